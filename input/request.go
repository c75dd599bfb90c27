// Package input reads the bridge request from its argument, from a file or from a CSV
// export.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pivolan/stats_preprocess/domain/models"
)

var ErrRequestNotObject = errors.New("request must be a JSON object")

// ParseRequest decodes {data, operation, params}. Absent or null data is an empty
// record set.
func ParseRequest(raw []byte) (*models.Request, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return nil, ErrRequestNotObject
	}
	var req models.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}
	return &req, nil
}

// ReadRequestFile parses a request stored in a possibly compressed file.
func ReadRequestFile(path string, limit int64) (*models.Request, error) {
	raw, err := ReadAll(path, limit)
	if err != nil {
		return nil, fmt.Errorf("read request %s: %w", path, err)
	}
	return ParseRequest(raw)
}
