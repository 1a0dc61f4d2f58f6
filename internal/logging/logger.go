// Package logging builds the zap loggers used across bemestar.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a zap logger at the given level. Development mode switches to
// the human-readable console encoder; otherwise JSON production output is
// written to stderr.
func New(level string, development bool) (*zap.Logger, error) {
	atom, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = atom
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: failed to initialize logger: %w", err)
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
