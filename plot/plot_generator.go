package plot

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoBars = errors.New("chart has no bars")

// DrawPlotBar renders the chart as a PNG bar chart.
func DrawPlotBar(c Chart) ([]byte, error) {
	if len(c.Bars) == 0 {
		return nil, ErrNoBars
	}

	barValues := make([]chart.Value, len(c.Bars))
	for i, b := range c.Bars {
		barValues[i] = chart.Value{
			Value: b.Value,
			Label: b.Label,
			Style: chart.Style{
				FillColor: drawing.ColorBlue.WithAlpha(100),
			},
		}
	}

	// a flat chart still needs a non-empty range
	maxY := c.maxValue()
	if maxY <= 0 {
		maxY = 1
	}
	gridStep := calculateGridStep(maxY)
	maxY = math.Ceil(maxY/gridStep) * gridStep

	paddingX := customizePaddingXBottom(barValues)
	width, height := calculateChartDimensions(len(barValues), 100)

	bar := chart.BarChart{
		Title: c.Name,
		Background: chart.Style{
			StrokeColor: chart.ColorBlack,
			Padding: chart.Box{
				Bottom: paddingX,
				Top:    50,
			},
		},
		Height:   height + 50,
		Width:    width + paddingX + 50,
		BarWidth: 60,
		Bars:     barValues,
		YAxis: chart.YAxis{
			Name: c.YName,
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: maxY,
			},
			Ticks: generateGrid(maxY, gridStep),
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: chart.ColorBlack,
				FontSize:    17,
			},
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorBlack,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
		XAxis: chart.Style{
			StrokeWidth:         2,
			StrokeColor:         chart.ColorBlack,
			TextRotationDegrees: 88,
			FontSize:            17,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := bar.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func generateGrid(max, step float64) []chart.Tick {
	var ticks []chart.Tick
	for i := 0.0; i <= max+step/2; i += step {
		ticks = append(ticks, chart.Tick{
			Value: i,
			Label: fmt.Sprintf("%.1f", i),
		})
	}
	return ticks
}

// calculateGridStep picks a 1-2-5 style step giving roughly five to ten grid lines.
func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	if maxValue < 1e-10 {
		return 1e-10
	}

	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}
	return step * magnitude
}

func calculateChartDimensions(bars int, minBarWidth float64) (width, height int) {
	if bars <= 0 || minBarWidth <= 0 {
		return 0, 0
	}
	x := 1.1
	if bars < 2 {
		x = 10.0
	} else if bars < 10 {
		x = 3.0
	}

	const (
		paddingY     = 100
		spacingRatio = 0.2
		aspectRatio  = 9.0 / 16.0
	)

	barSpacing := minBarWidth * spacingRatio
	totalWidth := (minBarWidth+barSpacing)*float64(bars) + paddingY
	width = int(totalWidth*x) + paddingY
	height = int(float64(width) * aspectRatio)
	return width, height
}

func customizePaddingXBottom(values []chart.Value) int {
	count := 0
	for _, v := range values {
		if len(v.Label) > count {
			count = len(v.Label)
		}
	}
	return count * 8
}
