package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseLevel("loud")
	assert.False(t, ok)
}

func TestSetup(t *testing.T) {
	t.Setenv(LevelEnv, "")
	var buf bytes.Buffer

	Setup(&buf, false)
	Info("hidden")
	assert.Empty(t, buf.String())

	Setup(&buf, true)
	With("template", "welcome").Debug("scored", "total", 91)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "scored", rec["msg"])
	assert.Equal(t, "welcome", rec["template"])
	assert.Equal(t, float64(91), rec["total"])
}

func TestSetupLevelEnv(t *testing.T) {
	t.Setenv(LevelEnv, "error")
	var buf bytes.Buffer

	Setup(&buf, true)
	Warn("hidden")
	assert.Empty(t, buf.String())
	Error("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
