// Package frame holds the in-memory columnar table built from a record set.
package frame

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pivolan/stats_preprocess/domain/models"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrIndexNotFound  = errors.New("index label not found")
	ErrIncomparable   = errors.New("column values are not comparable")
)

type Kind int

const (
	Text Kind = iota
	Int
	Float
	Bool
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "text"
	}
}

func (k Kind) IsNumeric() bool {
	return k == Int || k == Float
}

// Column values are int64 for Int, float64 for Float, bool for Bool and any scalar for
// Text. A nil value is a missing cell.
type Column struct {
	Name   string
	Kind   Kind
	Values []interface{}
}

// Table is a set of equally long columns plus the row labels. Labels are assigned
// 0..n-1 on construction and move together with their rows.
type Table struct {
	Columns []*Column
	Index   []int
}

// New builds a table from records. Columns appear in the order their keys were first seen;
// rows lacking a key get a missing cell.
func New(records []models.Record) *Table {
	var names []string
	seen := map[string]bool{}
	for _, r := range records {
		for _, key := range r.Keys {
			if !seen[key] {
				seen[key] = true
				names = append(names, key)
			}
		}
	}

	t := &Table{Index: make([]int, len(records))}
	for i := range records {
		t.Index[i] = i
	}
	for _, name := range names {
		values := make([]interface{}, len(records))
		for i, r := range records {
			v, _ := r.Get(name)
			values[i] = normalize(v)
		}
		t.Columns = append(t.Columns, newColumn(name, values))
	}
	return t
}

func (t *Table) Len() int {
	return len(t.Index)
}

func (t *Table) Column(name string) (*Column, error) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// Records returns the rows of the table, every column present in every row.
func (t *Table) Records() []models.Record {
	records := make([]models.Record, t.Len())
	for i := range records {
		r := models.NewRecord()
		for _, c := range t.Columns {
			r.Set(c.Name, c.Values[i])
		}
		records[i] = r
	}
	return records
}

// take returns a new table holding the rows at the given positions, in that order.
func (t *Table) take(positions []int) *Table {
	out := &Table{Index: make([]int, len(positions))}
	for i, p := range positions {
		out.Index[i] = t.Index[p]
	}
	for _, c := range t.Columns {
		values := make([]interface{}, len(positions))
		for i, p := range positions {
			values[i] = c.Values[p]
		}
		out.Columns = append(out.Columns, &Column{Name: c.Name, Kind: c.Kind, Values: values})
	}
	return out
}

func newColumn(name string, values []interface{}) *Column {
	c := &Column{Name: name, Kind: inferKind(values), Values: values}
	if c.Kind == Float {
		for i, v := range values {
			if n, ok := v.(int64); ok {
				values[i] = float64(n)
			}
		}
	}
	return c
}

// inferKind mirrors how a dataframe library types a column of scalars: integers without
// gaps stay integral, numbers with gaps or fractions become floats, booleans stay boolean
// only without gaps, and everything else is text.
func inferKind(values []interface{}) Kind {
	var nulls, ints, floats, bools int
	for _, v := range values {
		switch v.(type) {
		case nil:
			nulls++
		case int64:
			ints++
		case float64:
			floats++
		case bool:
			bools++
		}
	}
	nonNull := len(values) - nulls
	switch {
	case nonNull == 0:
		return Text
	case bools == nonNull:
		if nulls == 0 {
			return Bool
		}
		return Text
	case ints+floats == nonNull:
		if floats == 0 && nulls == 0 {
			return Int
		}
		return Float
	default:
		return Text
	}
}

// normalize turns decoded JSON scalars into the value types columns hold.
func normalize(v interface{}) interface{} {
	switch n := v.(type) {
	case json.Number:
		s := n.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := n.Int64(); err == nil {
				return i
			}
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return s
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
