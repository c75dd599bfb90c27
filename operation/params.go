package operation

import (
	"errors"
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"
)

var (
	ErrMissingParams = errors.New("operation requires params")
	ErrInvalidParams = errors.New("invalid params")
)

type SortParams struct {
	Column    *string `mapstructure:"column"`
	Ascending *bool   `mapstructure:"ascending"`
}

// IsAscending is true unless ascending was explicitly set to false.
func (p SortParams) IsAscending() bool {
	return p.Ascending == nil || *p.Ascending
}

type DeleteRowParams struct {
	Index interface{} `mapstructure:"index"`
}

// Labels returns the index labels to delete: a single label or a list of them.
func (p DeleteRowParams) Labels() ([]int, error) {
	switch v := p.Index.(type) {
	case nil:
		return nil, fmt.Errorf("%w: index is required", ErrInvalidParams)
	case []interface{}:
		labels := make([]int, 0, len(v))
		for _, item := range v {
			label, err := toLabel(item)
			if err != nil {
				return nil, err
			}
			labels = append(labels, label)
		}
		return labels, nil
	default:
		label, err := toLabel(v)
		if err != nil {
			return nil, err
		}
		return []int{label}, nil
	}
}

func toLabel(v interface{}) (int, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		return n, nil
	case int64:
		f = float64(n)
	default:
		return 0, fmt.Errorf("%w: index label %v is not a number", ErrInvalidParams, v)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: index label %v is not an integer", ErrInvalidParams, v)
	}
	if math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: index label %v is out of range", ErrInvalidParams, v)
	}
	return int(f), nil
}

func decodeParams(raw interface{}, out interface{}) error {
	if raw == nil {
		return ErrMissingParams
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		return fmt.Errorf("%w: params must be an object, got %T", ErrInvalidParams, raw)
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}
