// internal/logging/logging.go
package logging

import (
	"fmt"
	"go-beams/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Development mode switches to the console
// encoder with caller and stack traces on warnings.
func New(s config.LogSettings) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if s.Level != "" {
		parsed, err := zapcore.ParseLevel(s.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", s.Level, err)
		}
		level = parsed
	}

	cfg := zap.NewProductionConfig()
	if s.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
