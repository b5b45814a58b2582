package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig("info", "json", "coinshop", "test", "dev", false)
	InitLoggerWithWriter(cfg, &buf)

	FromContext(context.Background()).Info("hello", "key", "value")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "coinshop", entry["service"])
}

func TestInitLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig("warn", "text", "coinshop", "test", "dev", false)
	InitLoggerWithWriter(cfg, &buf)

	FromContext(context.Background()).Debug("should not appear")
	assert.Empty(t, buf.String())

	FromContext(context.Background()).Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestFromContext_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("info", "json", "coinshop", "test", "dev", false), &buf)

	id := GenerateRequestID()
	ctx := WithRequestID(context.Background(), id)
	FromContext(ctx).Info("traced")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["request_id"])
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestConfig_LogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", NewConfig("debug", "text", "", "", "", false).LogLevel().String())
	assert.Equal(t, "WARN", NewConfig("warning", "text", "", "", "", false).LogLevel().String())
	assert.Equal(t, "INFO", NewConfig("bogus", "text", "", "", "", false).LogLevel().String())
}
