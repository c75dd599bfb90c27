package frame

import "github.com/pivolan/stats_preprocess/domain/models"

func (c *Column) NullCount() int {
	n := 0
	for _, v := range c.Values {
		if v == nil {
			n++
		}
	}
	return n
}

// NullCounts lists the missing cell count of every column, zero counts included.
func (t *Table) NullCounts() []models.MissingCount {
	counts := make([]models.MissingCount, len(t.Columns))
	for i, c := range t.Columns {
		counts[i] = models.MissingCount{Column: c.Name, Count: c.NullCount()}
	}
	return counts
}
