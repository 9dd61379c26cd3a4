// Package logging builds the zap loggers used by the command line tools.
// Library packages never log; they return errors.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options control logger construction.
type Options struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string
	// Development switches to the console encoder with caller and stack info.
	Development bool
	// OutputPaths default to stderr so command output on stdout stays clean.
	OutputPaths []string
}

// ParseLevel converts a level name, defaulting to info when empty.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// New builds a logger. It never fails: on a bad level or a build error it
// returns a no-op logger together with the error so callers can report it.
func New(opts Options) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return zap.NewNop(), err
	}

	cfg := zap.NewProductionConfig()
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
	}

	logger, err := cfg.Build()
	if err != nil {
		// Fall back to nop logger
		return zap.NewNop(), fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
