package summary

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/stats_preprocess/domain/models"
)

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
)

// PreviewRows caps how many data rows the table and markdown reports print.
const PreviewRows = 20

// Render writes the human readable report: dataset overview, column analysis,
// numeric statistics and a preview of the rows.
func Render(w io.Writer, res *models.Result, an *models.Analysis, format string) error {
	tables := []table.Writer{
		overviewTable(an),
		columnsTable(an),
		statsTable(res),
		previewTable(res),
	}
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		var out string
		switch format {
		case FormatMarkdown:
			out = t.RenderMarkdown()
		case FormatTable:
			out = t.Render()
		default:
			return fmt.Errorf("unsupported report format %q", format)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}

func overviewTable(an *models.Analysis) table.Writer {
	t := newWriter("Dataset Overview")
	t.AppendHeader(table.Row{"Rows", "Columns", "Missing Values"})
	t.AppendRow(table.Row{an.TotalRows, an.TotalColumns, an.TotalMissing})
	return t
}

func columnsTable(an *models.Analysis) table.Writer {
	t := newWriter("Column Analysis")
	t.AppendHeader(table.Row{"Column", "Type", "Missing", "Unique", "Most Common", "Least Common"})
	for _, c := range an.Columns {
		t.AppendRow(table.Row{c.Column, c.Kind, c.Missing, c.Unique, formatValueCount(c.MostCommon), formatValueCount(c.LeastCommon)})
	}
	return t
}

func statsTable(res *models.Result) table.Writer {
	t := newWriter("Summary")
	t.AppendHeader(table.Row{"Column", models.StatCount, models.StatMean, models.StatStd, models.StatMin,
		models.StatQ25, models.StatQ50, models.StatQ75, models.StatMax})
	for _, cs := range res.Summary {
		s := cs.Stats
		t.AppendRow(table.Row{cs.Column, s.Count, formatStat(s.Mean), formatStat(s.Std), formatStat(s.Min),
			formatStat(s.Q25), formatStat(s.Q50), formatStat(s.Q75), formatStat(s.Max)})
	}
	return t
}

func previewTable(res *models.Result) table.Writer {
	t := newWriter(fmt.Sprintf("Data (%d rows)", len(res.Data)))
	header := table.Row{"#"}
	for _, mc := range res.MissingValues {
		header = append(header, mc.Column)
	}
	t.AppendHeader(header)
	for i, r := range res.Data {
		if i == PreviewRows {
			break
		}
		row := table.Row{i}
		for _, mc := range res.MissingValues {
			v, _ := r.Get(mc.Column)
			row = append(row, formatCell(v))
		}
		t.AppendRow(row)
	}
	return t
}

func newWriter(title string) table.Writer {
	t := table.NewWriter()
	t.SetTitle(title)
	t.SetStyle(table.StyleDefault)
	return t
}

func formatStat(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(roundToTwo(*v), 'f', -1, 64)
}

func formatValueCount(vc *models.ValueCount) string {
	if vc == nil {
		return ""
	}
	return fmt.Sprintf("%s (%d, %.2f%%)", vc.Value, vc.Count, vc.Percent)
}

func formatCell(v interface{}) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

// roundToTwo rounds to two decimal places.
func roundToTwo(num float64) float64 {
	return math.Round(num*100) / 100
}
