package cmd

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// InitLogger initializes the global logger. Verbose logs go to stderr with a
// human-readable console encoder, otherwise nothing is logged.
func InitLogger(verbose bool) {
	once.Do(func() {
		base := zap.NewNop()
		if verbose {
			l, err := zap.NewDevelopment()
			if err == nil {
				base = l
			}
		}
		sugar = base.Sugar()
	})
}

// Logger returns the global sugared logger.
// If InitLogger has not been called, it initializes it from the -v flag.
func Logger() *zap.SugaredLogger {
	if sugar == nil {
		InitLogger(*verbose)
	}
	return sugar
}

// SyncLogger flushes any buffered log entries. Call this before application exit.
func SyncLogger() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
