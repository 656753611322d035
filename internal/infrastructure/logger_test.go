package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestRunIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", GetRunID(ctx))

	ctx = WithRunID(ctx, "run-123")
	assert.Equal(t, "run-123", GetRunID(ctx))
}

func TestRunHandlerInjectsRunID(t *testing.T) {
	var buf bytes.Buffer
	handler := &runHandler{Handler: slog.NewJSONHandler(&buf, nil)}
	logger := slog.New(handler)

	ctx := WithRunID(context.Background(), "run-abc")
	logger.InfoContext(ctx, "stage complete", slog.Int("rows", 42))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "run-abc", entry["run_id"])
	assert.Equal(t, "stage complete", entry["msg"])

	// No run ID in context means no run_id attribute.
	buf.Reset()
	logger.Info("no run")
	entry = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, present := entry["run_id"]
	assert.False(t, present)
}
