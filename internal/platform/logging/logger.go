// Package logging wraps zap behind the small surface the SDK needs.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging handle passed to collaborators.
type Logger = zap.SugaredLogger

// New builds a production logger at the given level. Unknown levels
// fall back to info.
func New(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

// Nop discards everything; used in tests.
func Nop() *Logger {
	return zap.NewNop().Sugar()
}
