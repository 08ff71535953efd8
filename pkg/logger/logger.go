// Package logger builds the structured zap loggers used by the binaries.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a JSON logger writing to stderr at the given level.
// Unknown levels fall back to info.
func New(level string) *zap.Logger {
	return build(level, []string{"stderr"})
}

// NewFile creates a JSON logger that appends to path. Used where stderr belongs
// to an interactive screen.
func NewFile(level, path string) (*zap.Logger, error) {
	cfg := config(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func build(level string, outputs []string) *zap.Logger {
	cfg := config(level)
	cfg.OutputPaths = outputs
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func config(level string) zap.Config {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}
