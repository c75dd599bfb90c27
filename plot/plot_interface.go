package plot

import (
	"fmt"
	"math"
)

// Bar is one labelled value of a bar chart.
type Bar struct {
	Label string
	Value float64
}

// Chart is the format independent description both renderers draw.
type Chart struct {
	Name  string
	YName string
	Bars  []Bar
}

func (c Chart) maxValue() float64 {
	max := 0.0
	for _, b := range c.Bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}

// Histogram buckets values into bins of equal width between their min and max. All
// equal values end up in a single bin.
func Histogram(values []float64, bins int) []Bar {
	if len(values) == 0 {
		return nil
	}
	min, max := values[0], values[0]
	for _, v := range values {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if bins < 1 || min == max {
		bins = 1
	}

	span := max - min
	width := span / float64(bins)
	if math.IsInf(span, 0) {
		width = max/float64(bins) - min/float64(bins)
	}
	counts := make([]float64, bins)
	for _, v := range values {
		i := bins - 1
		if width > 0 && !math.IsInf(width, 0) {
			pos := (v - min) / width
			if math.IsInf(span, 0) {
				pos = v/width - min/width
			}
			if math.IsNaN(pos) || pos < 0 {
				pos = 0
			}
			if pos < float64(bins) {
				i = int(pos)
			}
		}
		counts[i]++
	}

	bars := make([]Bar, bins)
	for i := range bars {
		start := min + float64(i)*width
		end := start + width
		if i == bins-1 {
			end = max
		}
		bars[i] = Bar{Label: fmt.Sprintf("%s-%s", formatEdge(start), formatEdge(end)), Value: counts[i]}
	}
	return bars
}

// SturgesBins is the bin count of Sturges' rule, ceil(log2(n)) + 1.
func SturgesBins(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

func formatEdge(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
