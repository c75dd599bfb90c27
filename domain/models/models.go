package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Statistic names emitted per numeric column, in output order.
const (
	StatCount = "count"
	StatMean  = "mean"
	StatStd   = "std"
	StatMin   = "min"
	StatQ25   = "25%"
	StatQ50   = "50%"
	StatQ75   = "75%"
	StatMax   = "max"
)

var ErrRecordNotObject = errors.New("record must be a JSON object")

// Record is one row of a record set. Keys keeps the order columns were first seen in.
type Record struct {
	Keys   []string
	Values map[string]interface{}
}

func NewRecord() Record {
	return Record{Values: map[string]interface{}{}}
}

func (r *Record) Set(key string, value interface{}) {
	if r.Values == nil {
		r.Values = map[string]interface{}{}
	}
	if _, ok := r.Values[key]; !ok {
		r.Keys = append(r.Keys, key)
	}
	r.Values[key] = value
}

func (r Record) Get(key string) (interface{}, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// UnmarshalJSON decodes a row object keeping key order. Numbers are kept as json.Number
// so the table can tell integer literals from fractional ones.
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrRecordNotObject
	}
	*r = NewRecord()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected record key %v", tok)
		}
		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode value of %q: %w", key, err)
		}
		r.Set(key, value)
	}
	_, err = dec.Token()
	return err
}

func (r Record) MarshalJSON() ([]byte, error) {
	w := objectWriter{}
	for _, key := range r.Keys {
		if err := w.field(key, r.Values[key]); err != nil {
			return nil, err
		}
	}
	return w.close(), nil
}

// Request is the single argument the bridge is invoked with.
type Request struct {
	Data      []Record    `json:"data"`
	Operation interface{} `json:"operation"`
	Params    interface{} `json:"params"`
}

// OperationName returns the requested operation, or "" when it is absent or not a string.
func (r *Request) OperationName() string {
	name, _ := r.Operation.(string)
	return name
}

// Stats holds the descriptive statistics of one numeric column. Nil pointers are
// statistics that are undefined for the column, e.g. std with fewer than two values.
// Non-finite values are written as null too.
type Stats struct {
	Count int
	Mean  *float64
	Std   *float64
	Min   *float64
	Q25   *float64
	Q50   *float64
	Q75   *float64
	Max   *float64
}

func (s Stats) MarshalJSON() ([]byte, error) {
	w := objectWriter{}
	fields := []struct {
		name  string
		value *float64
	}{
		{StatMean, s.Mean}, {StatStd, s.Std}, {StatMin, s.Min},
		{StatQ25, s.Q25}, {StatQ50, s.Q50}, {StatQ75, s.Q75}, {StatMax, s.Max},
	}
	if err := w.field(StatCount, s.Count); err != nil {
		return nil, err
	}
	for _, f := range fields {
		var v interface{}
		if f.value != nil && !math.IsInf(*f.value, 0) && !math.IsNaN(*f.value) {
			v = *f.value
		}
		if err := w.field(f.name, v); err != nil {
			return nil, err
		}
	}
	return w.close(), nil
}

type ColumnStats struct {
	Column string
	Stats  Stats
}

type MissingCount struct {
	Column string
	Count  int
}

// Result is what the bridge writes back: the table rows, the numeric summary and the
// missing value counts.
type Result struct {
	Data          []Record
	Summary       []ColumnStats
	MissingValues []MissingCount
}

func (r Result) MarshalJSON() ([]byte, error) {
	data := r.Data
	if data == nil {
		data = []Record{}
	}
	summary := objectWriter{}
	for _, cs := range r.Summary {
		if err := summary.field(cs.Column, cs.Stats); err != nil {
			return nil, err
		}
	}
	missing := objectWriter{}
	for _, mc := range r.MissingValues {
		if err := missing.field(mc.Column, mc.Count); err != nil {
			return nil, err
		}
	}

	w := objectWriter{}
	if err := w.field("data", data); err != nil {
		return nil, err
	}
	if err := w.field("summary", json.RawMessage(summary.close())); err != nil {
		return nil, err
	}
	if err := w.field("missing_values", json.RawMessage(missing.close())); err != nil {
		return nil, err
	}
	return w.close(), nil
}

// TotalMissing sums the missing counts over every column.
func (r Result) TotalMissing() int {
	total := 0
	for _, mc := range r.MissingValues {
		total += mc.Count
	}
	return total
}

type ValueCount struct {
	Value   string
	Count   int64
	Percent float64
}

type ColumnAnalysis struct {
	Column      string
	Kind        string
	Missing     int
	Unique      int
	MostCommon  *ValueCount
	LeastCommon *ValueCount
}

// Analysis is the human oriented overview printed by the table and markdown formats.
type Analysis struct {
	TotalRows    int
	TotalColumns int
	TotalMissing int
	Columns      []ColumnAnalysis
}

// objectWriter writes a JSON object with keys in insertion order.
type objectWriter struct {
	buf bytes.Buffer
	n   int
}

func (w *objectWriter) field(key string, value interface{}) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	if w.n == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(v)
	w.n++
	return nil
}

func (w *objectWriter) close() []byte {
	if w.n == 0 {
		return []byte("{}")
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes()
}
