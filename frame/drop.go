package frame

import "fmt"

// Drop removes the rows carrying the given index labels. Every label has to exist.
func (t *Table) Drop(labels []int) (*Table, error) {
	positions := make(map[int]int, len(t.Index))
	for p, label := range t.Index {
		positions[label] = p
	}
	removed := make(map[int]bool, len(labels))
	for _, label := range labels {
		p, ok := positions[label]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrIndexNotFound, label)
		}
		removed[p] = true
	}

	keep := make([]int, 0, t.Len()-len(removed))
	for p := range t.Index {
		if !removed[p] {
			keep = append(keep, p)
		}
	}
	return t.take(keep), nil
}

// DropNulls removes every row that has a missing cell in any column. Column kinds are
// left as they were.
func (t *Table) DropNulls() *Table {
	keep := make([]int, 0, t.Len())
	for p := range t.Index {
		complete := true
		for _, c := range t.Columns {
			if c.Values[p] == nil {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, p)
		}
	}
	return t.take(keep)
}
