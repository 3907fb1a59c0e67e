package main

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the CLI's logger instance. It uses a no-op logger by
// default, matching the ambient logging convention used throughout the
// resolution pipeline.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the CLI's logger. Must be called before any
// command runs, i.e. from the --verbose flag's PersistentPreRunE.
func SetLogger(l *zap.Logger) {
	logger = l
}
