package frame

import (
	"math"
	"sort"

	"github.com/pivolan/stats_preprocess/domain/models"
)

// Describe computes count, mean, sample standard deviation, min, quartiles and max over
// the non-missing values of a numeric column.
func (c *Column) Describe() models.Stats {
	numbers := c.Numbers()
	stats := models.Stats{Count: len(numbers)}
	if len(numbers) == 0 {
		return stats
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	mean, scale := meanOf(numbers)
	if !math.IsInf(mean, 0) {
		stats.Mean = &mean
	}

	if len(numbers) > 1 {
		std := stdOf(numbers, mean, scale)
		if !math.IsInf(std, 0) && !math.IsNaN(std) {
			stats.Std = &std
		}
	}

	min, max := sorted[0], sorted[len(sorted)-1]
	q25 := calculateQuantile(sorted, 0.25)
	q50 := calculateQuantile(sorted, 0.5)
	q75 := calculateQuantile(sorted, 0.75)
	stats.Min, stats.Max = &min, &max
	stats.Q25, stats.Q50, stats.Q75 = &q25, &q50, &q75
	return stats
}

// meanOf returns the mean and the largest magnitude of numbers. Sums that overflow are
// redone over values divided by that magnitude.
func meanOf(numbers []float64) (float64, float64) {
	sum, scale := 0.0, 0.0
	for _, n := range numbers {
		sum += n
		scale = math.Max(scale, math.Abs(n))
	}
	k := float64(len(numbers))
	if !math.IsInf(sum, 0) {
		return sum / k, scale
	}

	sum = 0
	for _, n := range numbers {
		sum += n / scale
	}
	return sum / k * scale, scale
}

// stdOf is the sample standard deviation, n-1 in the denominator.
func stdOf(numbers []float64, mean, scale float64) float64 {
	k := float64(len(numbers) - 1)
	squares := 0.0
	for _, n := range numbers {
		squares += (n - mean) * (n - mean)
	}
	if !math.IsInf(squares, 0) && !math.IsNaN(squares) {
		return math.Sqrt(squares / k)
	}

	squares = 0
	for _, n := range numbers {
		d := n/scale - mean/scale
		squares += d * d
	}
	return math.Sqrt(squares/k) * scale
}

// Numbers returns the non-missing values of a numeric column as floats.
func (c *Column) Numbers() []float64 {
	if !c.Kind.IsNumeric() {
		return nil
	}
	numbers := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if f, ok := toFloat(v); ok {
			numbers = append(numbers, f)
		}
	}
	return numbers
}

// calculateQuantile interpolates linearly between the two closest ranks.
func calculateQuantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	pos := p * float64(len(sorted)-1)
	floor := math.Floor(pos)
	ceil := math.Ceil(pos)

	if floor == ceil {
		return sorted[int(pos)]
	}

	lower := sorted[int(floor)]
	upper := sorted[int(ceil)]
	fraction := pos - floor

	if math.IsInf(upper-lower, 0) {
		return lower*(1-fraction) + upper*fraction
	}
	return lower + fraction*(upper-lower)
}
