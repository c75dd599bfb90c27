package summary

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/stats_preprocess/domain/models"
	"github.com/pivolan/stats_preprocess/frame"
)

func tableFromJSON(t *testing.T, data string) *frame.Table {
	t.Helper()
	var records []models.Record
	require.NoError(t, json.Unmarshal([]byte(data), &records))
	return frame.New(records)
}

func TestBuild(t *testing.T) {
	table := tableFromJSON(t, `[{"a":1,"b":"x","c":true},{"a":3,"b":null,"c":false}]`)

	res := Build(table)
	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"data": [{"a":1,"b":"x","c":true},{"a":3,"b":null,"c":false}],
		"summary": {"a": {"count":2,"mean":2,"std":1.4142135623730951,"min":1,"25%":1.5,"50%":2,"75%":2.5,"max":3}},
		"missing_values": {"a":0,"b":1,"c":0}
	}`, string(out))
	assert.Equal(t, 1, res.TotalMissing())
}

func TestBuildKeepsKeyOrder(t *testing.T) {
	table := tableFromJSON(t, `[{"z":1,"a":2}]`)

	out, err := json.Marshal(Build(table))
	require.NoError(t, err)
	assert.Equal(t,
		`{"data":[{"z":1,"a":2}],"summary":{"z":{"count":1,"mean":1,"std":null,"min":1,"25%":1,"50%":1,"75%":1,"max":1},`+
			`"a":{"count":1,"mean":2,"std":null,"min":2,"25%":2,"50%":2,"75%":2,"max":2}},"missing_values":{"z":0,"a":0}}`,
		string(out))
}

func TestBuildEmpty(t *testing.T) {
	out, err := json.Marshal(Build(frame.New(nil)))
	require.NoError(t, err)
	assert.Equal(t, `{"data":[],"summary":{},"missing_values":{}}`, string(out))
}

func TestBuildWithoutNumericColumns(t *testing.T) {
	res := Build(tableFromJSON(t, `[{"b":"x"}]`))
	assert.Empty(t, res.Summary)
	assert.Equal(t, []models.MissingCount{{Column: "b", Count: 0}}, res.MissingValues)
}

func TestAnalyze(t *testing.T) {
	table := tableFromJSON(t, `[
		{"city":"Oslo","n":1},
		{"city":"Rome","n":2},
		{"city":"Oslo","n":null},
		{"city":null,"n":2}
	]`)

	an := Analyze(table)
	assert.Equal(t, 4, an.TotalRows)
	assert.Equal(t, 2, an.TotalColumns)
	assert.Equal(t, 2, an.TotalMissing)
	require.Len(t, an.Columns, 2)

	city := an.Columns[0]
	assert.Equal(t, "text", city.Kind)
	assert.Equal(t, 1, city.Missing)
	assert.Equal(t, 2, city.Unique)
	require.NotNil(t, city.MostCommon)
	assert.Equal(t, models.ValueCount{Value: "Oslo", Count: 2, Percent: 66.67}, *city.MostCommon)
	assert.Equal(t, "Rome", city.LeastCommon.Value)

	n := an.Columns[1]
	assert.Equal(t, "float", n.Kind)
	assert.Equal(t, 2, n.Unique)
	assert.Nil(t, n.MostCommon)
}

func TestRender(t *testing.T) {
	table := tableFromJSON(t, `[{"name":"widget","price":2.5},{"name":"gadget","price":null}]`)
	res := Build(table)
	an := Analyze(table)

	for _, format := range []string{FormatTable, FormatMarkdown} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, res, an, format))
			out := buf.String()
			assert.Contains(t, out, "widget")
			assert.Contains(t, out, "gadget")
			assert.Contains(t, out, "price")
			assert.Contains(t, out, "2.5")
			assert.Contains(t, out, "N/A")
			assert.Contains(t, out, "null")
		})
	}

	assert.Error(t, Render(&bytes.Buffer{}, res, an, FormatJSON))
}
