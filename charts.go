package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pivolan/stats_preprocess/domain/models"
	"github.com/pivolan/stats_preprocess/frame"
	"github.com/pivolan/stats_preprocess/plot"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// writeCharts writes a histogram for every numeric column that has values and one bar
// chart of the missing counts. It returns the written paths.
func writeCharts(dir, format string, table *frame.Table, res *models.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var charts []plot.Chart
	for _, c := range table.Columns {
		numbers := c.Numbers()
		if len(numbers) == 0 {
			continue
		}
		charts = append(charts, plot.Chart{
			Name:  c.Name,
			YName: "Frequency",
			Bars:  plot.Histogram(numbers, plot.SturgesBins(len(numbers))),
		})
	}
	if len(res.MissingValues) > 0 {
		missing := plot.Chart{Name: "missing_values", YName: "Missing"}
		for _, mc := range res.MissingValues {
			missing.Bars = append(missing.Bars, plot.Bar{Label: mc.Column, Value: float64(mc.Count)})
		}
		charts = append(charts, missing)
	}

	var written []string
	for i, c := range charts {
		path := filepath.Join(dir, chartFileName(i, c.Name, format))
		if err := writeChart(path, format, c); err != nil {
			return written, fmt.Errorf("chart %q: %w", c.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func writeChart(path, format string, c plot.Chart) error {
	if format == "html" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := plot.RenderHTML(f, c); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	png, err := plot.DrawPlotBar(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0644)
}

// chartFileName prefixes a position so columns whose names clean to the same string
// do not overwrite each other.
func chartFileName(i int, name, format string) string {
	clean := strings.Trim(unsafeFileChars.ReplaceAllString(name, "_"), "_")
	if clean == "" {
		clean = "column"
	}
	return fmt.Sprintf("%02d_%s.%s", i, clean, format)
}
