package frame

import (
	"fmt"
	"sort"
	"strings"
)

type keyMode int

const (
	byNumber keyMode = iota
	byInteger
	byString
)

type sortKey struct {
	null bool
	num  float64
	i64  int64
	str  string
}

func (a sortKey) compare(b sortKey, mode keyMode) int {
	switch mode {
	case byString:
		return strings.Compare(a.str, b.str)
	case byInteger:
		switch {
		case a.i64 < b.i64:
			return -1
		case a.i64 > b.i64:
			return 1
		}
		return 0
	}
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	}
	return 0
}

// SortBy orders rows by the named column. Missing cells go last in both directions and
// equal values keep their current order.
func (t *Table) SortBy(name string, ascending bool) (*Table, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	keys, mode, err := sortKeys(col)
	if err != nil {
		return nil, err
	}

	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := keys[order[i]], keys[order[j]]
		if a.null || b.null {
			return !a.null && b.null
		}
		c := a.compare(b, mode)
		if ascending {
			return c < 0
		}
		return c > 0
	})
	return t.take(order), nil
}

// sortKeys extracts comparable keys. Int columns compare exactly as int64. Text columns
// compare as strings when every value is a string and as numbers when every value is
// numeric or boolean; mixing both fails.
func sortKeys(c *Column) ([]sortKey, keyMode, error) {
	keys := make([]sortKey, len(c.Values))
	var strs, nums int
	for i, v := range c.Values {
		switch x := v.(type) {
		case nil:
			keys[i].null = true
		case string:
			keys[i].str = x
			strs++
		case bool:
			if x {
				keys[i].num = 1
			}
			nums++
		case int64:
			keys[i].i64 = x
			keys[i].num = float64(x)
			nums++
		default:
			f, ok := toFloat(x)
			if !ok {
				return nil, byNumber, fmt.Errorf("%w: %q holds %T", ErrIncomparable, c.Name, v)
			}
			keys[i].num = f
			nums++
		}
	}
	switch {
	case strs > 0 && nums > 0:
		return nil, byNumber, fmt.Errorf("%w: %q mixes text and numbers", ErrIncomparable, c.Name)
	case strs > 0:
		return keys, byString, nil
	case c.Kind == Int:
		return keys, byInteger, nil
	}
	return keys, byNumber, nil
}
