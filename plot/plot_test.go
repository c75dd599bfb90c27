package plot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	bars := Histogram([]float64{1, 2, 3, 4}, 3)
	assert.Equal(t, []Bar{
		{Label: "1-2", Value: 1},
		{Label: "2-3", Value: 1},
		{Label: "3-4", Value: 2},
	}, bars)

	bars = Histogram([]float64{5, 5, 5}, 4)
	assert.Equal(t, []Bar{{Label: "5-5", Value: 3}}, bars)

	assert.Nil(t, Histogram(nil, 3))

	bars = Histogram([]float64{1e308, -1e308}, 2)
	require.Len(t, bars, 2)
	assert.Equal(t, 1.0, bars[0].Value)
	assert.Equal(t, 1.0, bars[1].Value)
}

func TestSturgesBins(t *testing.T) {
	assert.Equal(t, 1, SturgesBins(0))
	assert.Equal(t, 1, SturgesBins(1))
	assert.Equal(t, 2, SturgesBins(2))
	assert.Equal(t, 5, SturgesBins(10))
	assert.Equal(t, 11, SturgesBins(1000))
}

func TestCalculateGridStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 0},
		{1, 0.2},
		{15, 5},
		{40, 10},
		{900, 200},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, calculateGridStep(tt.max), 1e-9, "max %v", tt.max)
	}
}

func TestDrawPlotBar(t *testing.T) {
	c := Chart{Name: "price", YName: "Frequency", Bars: Histogram([]float64{1, 2, 2, 3, 8}, 3)}

	png, err := DrawPlotBar(c)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	flat := Chart{Name: "missing", YName: "Missing", Bars: []Bar{{Label: "a", Value: 0}, {Label: "b", Value: 0}}}
	_, err = DrawPlotBar(flat)
	assert.NoError(t, err)

	_, err = DrawPlotBar(Chart{Name: "empty"})
	assert.ErrorIs(t, err, ErrNoBars)
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	err := RenderHTML(&buf, Chart{Name: "price", YName: "Frequency", Bars: []Bar{{Label: "1-2", Value: 3}}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "echarts")
	assert.Contains(t, buf.String(), "1-2")

	assert.ErrorIs(t, RenderHTML(&buf, Chart{}), ErrNoBars)
}
