package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", "json")
	require.NoError(t, err)

	With(l, Ctx{"source": "parquet", "rows": 3}).Debug("Query executed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Query executed", entry["msg"])
	assert.Equal(t, "parquet", entry["source"])
	assert.Equal(t, float64(3), entry["rows"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn", "text")
	require.NoError(t, err)

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(nil, "loud", "text")
	assert.Error(t, err)
}
