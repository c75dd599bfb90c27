package frame

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// ToNumeric tries to reinterpret a text column as numbers. It reports false and leaves
// the column untouched when any value is neither a number nor a numeric string.
func (c *Column) ToNumeric() (*Column, bool) {
	if c.Kind != Text || len(c.Values) == 0 {
		return c, false
	}
	values := make([]interface{}, len(c.Values))
	for i, v := range c.Values {
		n, ok := parseNumber(v)
		if !ok {
			return c, false
		}
		values[i] = n
	}
	kind := inferKind(values)
	if !kind.IsNumeric() {
		return c, false
	}
	return newColumn(c.Name, values), true
}

// Clean drops incomplete rows and converts every text column that is entirely numeric.
func (t *Table) Clean() *Table {
	out := t.DropNulls()
	for i, c := range out.Columns {
		if converted, ok := c.ToNumeric(); ok {
			out.Columns[i] = converted
		}
	}
	return out
}

func parseNumber(v interface{}) (interface{}, bool) {
	switch x := v.(type) {
	case int64, float64:
		return x, true
	case string:
		s := strings.TrimSpace(x)
		if integerPattern.MatchString(s) {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n, true
			}
		}
		if decimalPattern.MatchString(s) {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return nil, false
}
