// Package logger builds the diagnostic logger shared by both commands.
// Diagnostics go to stderr and never replace the human-readable report.
package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel names the variable that sets the log level.
const EnvLevel = "OAUTHPREP_LOG_LEVEL"

// LevelFromString converts a level name to a zap level. Unknown names map to warn.
func LevelFromString(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.WarnLevel
	}
}

// New returns a console-encoded logger writing to w at the given level.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// FromEnv returns a logger writing to w, normally the command's stderr.
// debug forces debug level; otherwise the level comes from OAUTHPREP_LOG_LEVEL.
func FromEnv(w io.Writer, debug bool) *zap.Logger {
	level := LevelFromString(os.Getenv(EnvLevel))
	if debug {
		level = zap.DebugLevel
	}
	return New(w, level)
}
