package operation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/stats_preprocess/domain/models"
	"github.com/pivolan/stats_preprocess/frame"
)

func sampleTable(t *testing.T) *frame.Table {
	t.Helper()
	var records []models.Record
	require.NoError(t, json.Unmarshal([]byte(`[{"a":2,"b":"x"},{"a":3,"b":null},{"a":1,"b":"z"}]`), &records))
	return frame.New(records)
}

func params(t *testing.T, raw string) interface{} {
	t.Helper()
	var p interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func column(t *testing.T, table *frame.Table, name string) []interface{} {
	t.Helper()
	c, err := table.Column(name)
	require.NoError(t, err)
	return c.Values
}

func TestParse(t *testing.T) {
	assert.Equal(t, Sort, Parse("sort"))
	assert.Equal(t, DeleteRow, Parse("delete_row"))
	assert.Equal(t, Clean, Parse("clean"))
	assert.Equal(t, Identity, Parse(""))
	assert.Equal(t, Identity, Parse("Sort"))
	assert.Equal(t, Identity, Parse("pivot"))
	assert.Equal(t, "delete_row", DeleteRow.String())
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		op     string
		params string
		want   []interface{}
	}{
		{"Sort ascending by default", "sort", `{"column":"a"}`, []interface{}{int64(1), int64(2), int64(3)}},
		{"Sort descending", "sort", `{"column":"a","ascending":false}`, []interface{}{int64(3), int64(2), int64(1)}},
		{"Sort ascending null", "sort", `{"column":"a","ascending":null}`, []interface{}{int64(1), int64(2), int64(3)}},
		{"Sort ignores unknown keys", "sort", `{"column":"a","extra":1}`, []interface{}{int64(1), int64(2), int64(3)}},
		{"Delete single", "delete_row", `{"index":1}`, []interface{}{int64(2), int64(1)}},
		{"Delete list", "delete_row", `{"index":[0,2]}`, []interface{}{int64(3)}},
		{"Delete integral float", "delete_row", `{"index":2.0}`, []interface{}{int64(2), int64(3)}},
		{"Delete empty list", "delete_row", `{"index":[]}`, []interface{}{int64(2), int64(3), int64(1)}},
		{"Clean", "clean", `null`, []interface{}{int64(2), int64(1)}},
		{"Unknown is identity", "pivot", `{"column":"zzz"}`, []interface{}{int64(2), int64(3), int64(1)}},
		{"Absent is identity", "", `null`, []interface{}{int64(2), int64(3), int64(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Apply(sampleTable(t), tt.op, params(t, tt.params))
			require.NoError(t, err)
			assert.Equal(t, tt.want, column(t, out, "a"))
		})
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		params  string
		wantErr error
	}{
		{"Sort without params", "sort", `null`, ErrMissingParams},
		{"Sort params not object", "sort", `[1]`, ErrInvalidParams},
		{"Sort without column", "sort", `{"ascending":true}`, ErrInvalidParams},
		{"Sort column not string", "sort", `{"column":5}`, ErrInvalidParams},
		{"Sort ascending not bool", "sort", `{"column":"a","ascending":"no"}`, ErrInvalidParams},
		{"Sort unknown column", "sort", `{"column":"zzz"}`, frame.ErrColumnNotFound},
		{"Delete without params", "delete_row", `null`, ErrMissingParams},
		{"Delete without index", "delete_row", `{}`, ErrInvalidParams},
		{"Delete fractional index", "delete_row", `{"index":1.5}`, ErrInvalidParams},
		{"Delete string index", "delete_row", `{"index":"1"}`, ErrInvalidParams},
		{"Delete unknown index", "delete_row", `{"index":7}`, frame.ErrIndexNotFound},
		{"Delete unknown index in list", "delete_row", `{"index":[0,7]}`, frame.ErrIndexNotFound},
		{"Delete index beyond int range", "delete_row", `{"index":1e20}`, ErrInvalidParams},
		{"Delete negative index beyond int range", "delete_row", `{"index":[0,-1e20]}`, ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(sampleTable(t), tt.op, params(t, tt.params))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
