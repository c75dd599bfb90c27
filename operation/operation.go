// Package operation applies the named transformation requested by the host process.
package operation

import (
	"fmt"

	"github.com/pivolan/stats_preprocess/frame"
)

type Kind int

const (
	Identity Kind = iota
	Sort
	DeleteRow
	Clean
)

// Parse maps an operation name to its kind. Unknown and empty names are Identity.
func Parse(name string) Kind {
	switch name {
	case "sort":
		return Sort
	case "delete_row":
		return DeleteRow
	case "clean":
		return Clean
	default:
		return Identity
	}
}

func (k Kind) String() string {
	switch k {
	case Sort:
		return "sort"
	case DeleteRow:
		return "delete_row"
	case Clean:
		return "clean"
	default:
		return "identity"
	}
}

// Apply runs the named operation on t. Unrecognized operations return t unchanged, but
// bad params for a recognized one are an error.
func Apply(t *frame.Table, name string, params interface{}) (*frame.Table, error) {
	switch Parse(name) {
	case Sort:
		var p SortParams
		if err := decodeParams(params, &p); err != nil {
			return nil, fmt.Errorf("sort: %w", err)
		}
		if p.Column == nil {
			return nil, fmt.Errorf("sort: %w: column is required", ErrInvalidParams)
		}
		sorted, err := t.SortBy(*p.Column, p.IsAscending())
		if err != nil {
			return nil, fmt.Errorf("sort: %w", err)
		}
		return sorted, nil

	case DeleteRow:
		var p DeleteRowParams
		if err := decodeParams(params, &p); err != nil {
			return nil, fmt.Errorf("delete_row: %w", err)
		}
		labels, err := p.Labels()
		if err != nil {
			return nil, fmt.Errorf("delete_row: %w", err)
		}
		out, err := t.Drop(labels)
		if err != nil {
			return nil, fmt.Errorf("delete_row: %w", err)
		}
		return out, nil

	case Clean:
		return t.Clean(), nil
	}
	return t, nil
}
