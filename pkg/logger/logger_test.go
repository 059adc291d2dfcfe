package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLevelFromString(t *testing.T) {
	tests := map[string]string{
		"debug":   "debug",
		"DEBUG":   "debug",
		" info ":  "info",
		"error":   "error",
		"warn":    "warn",
		"":        "warn",
		"verbose": "warn",
	}
	for in, want := range tests {
		assert.Equal(t, want, LevelFromString(in).String(), "LevelFromString(%q)", in)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zap.InfoLevel)

	log.Debug("hidden")
	log.Info("loaded env file", zap.String("path", ".env"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded env file")
	assert.Contains(t, out, `"path": ".env"`)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "error")

	var buf bytes.Buffer
	assert.False(t, FromEnv(&buf, false).Core().Enabled(zap.WarnLevel))
	assert.True(t, FromEnv(&buf, true).Core().Enabled(zap.DebugLevel))

	FromEnv(&buf, false).Error("copy mismatch")
	assert.Contains(t, buf.String(), "copy mismatch")
}
