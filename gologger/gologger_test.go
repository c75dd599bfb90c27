package gologger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Setenv("PRETTY", "")
	t.Setenv("DEBUG", "")

	var buf bytes.Buffer
	logger := newLogger(&buf)
	logger.Info().Str("operation", "sort").Msg("applied")
	logger.Debug().Msg("hidden")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "applied", line["message"])
	assert.Equal(t, "sort", line["operation"])
	assert.Equal(t, RunID, line["run_id"])
	assert.Contains(t, line, "time")
	assert.Contains(t, line, "caller")
	assert.Len(t, RunID, 36)
}
