package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: slog.LevelInfo, Format: "json", Output: &buf})
	require.NoError(t, err)
	l.Info("cube loaded", "naxis", 3)
	require.Contains(t, buf.String(), `"msg":"cube loaded"`)
	require.Contains(t, buf.String(), `"naxis":3`)

	buf.Reset()
	l, err = New(Config{Level: slog.LevelWarn, Format: "text", Output: &buf})
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")

	_, err = New(Config{Format: "xml"})
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.NotNil(t, cfg.Output)
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LevelFromVerbosity(0))
	assert.Equal(t, slog.LevelInfo, LevelFromVerbosity(1))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(3))
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := slog.Default()
	assert.Same(t, l, OrDiscard(l))
	assert.False(t, Discard().Enabled(t.Context(), slog.LevelError))
}
