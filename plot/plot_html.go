package plot

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML writes the chart as a standalone interactive echarts page.
func RenderHTML(w io.Writer, c Chart) error {
	if len(c.Bars) == 0 {
		return ErrNoBars
	}

	labels := make([]string, len(c.Bars))
	items := make([]opts.BarData, len(c.Bars))
	for i, b := range c.Bars {
		labels[i] = b.Label
		items[i] = opts.BarData{Value: b.Value}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: c.Name}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.YName}),
	)
	bar.SetXAxis(labels).AddSeries(c.YName, items)
	return bar.Render(w)
}
