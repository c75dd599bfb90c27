// Package summary assembles the result written back to the host process.
package summary

import (
	"fmt"
	"sort"

	"github.com/pivolan/stats_preprocess/domain/models"
	"github.com/pivolan/stats_preprocess/frame"
)

// Build collects the rows, the statistics of every numeric column and the missing
// counts of every column of t.
func Build(t *frame.Table) *models.Result {
	res := &models.Result{
		Data:          t.Records(),
		Summary:       []models.ColumnStats{},
		MissingValues: t.NullCounts(),
	}
	for _, c := range t.Columns {
		if !c.Kind.IsNumeric() {
			continue
		}
		res.Summary = append(res.Summary, models.ColumnStats{Column: c.Name, Stats: c.Describe()})
	}
	return res
}

// Analyze produces the per column overview: kind, gaps, distinct values and, for text
// columns, the most and least frequent value.
func Analyze(t *frame.Table) *models.Analysis {
	an := &models.Analysis{
		TotalRows:    t.Len(),
		TotalColumns: len(t.Columns),
	}
	for _, c := range t.Columns {
		ca := models.ColumnAnalysis{
			Column:  c.Name,
			Kind:    c.Kind.String(),
			Missing: c.NullCount(),
		}
		counts := valueCounts(c)
		ca.Unique = len(counts)
		if c.Kind == frame.Text && len(counts) > 0 {
			ca.MostCommon = &counts[0]
			ca.LeastCommon = &counts[len(counts)-1]
		}
		an.TotalMissing += ca.Missing
		an.Columns = append(an.Columns, ca)
	}
	return an
}

// valueCounts counts non-missing values, most frequent first. Equal counts keep the
// order values were first seen in.
func valueCounts(c *frame.Column) []models.ValueCount {
	index := map[string]int{}
	var counts []models.ValueCount
	present := 0
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		present++
		key := fmt.Sprint(v)
		if i, ok := index[key]; ok {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, models.ValueCount{Value: key, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	for i := range counts {
		counts[i].Percent = roundToTwo(float64(counts[i].Count) * 100 / float64(present))
	}
	return counts
}
