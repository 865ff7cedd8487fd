// Package logger provides structured logging on top of the Uber zap library.
package logger

import (
	"errors"
	"syscall"

	"go.uber.org/zap"
)

// Log is the process-wide SugaredLogger. It discards everything until Init
// is called, so packages and tests can log without setup.
var Log = zap.NewNop().Sugar()

// Init configures Log with the given level. When outputPaths is empty logs go
// to stderr; the interactive UI passes a file so the screen stays clean.
func Init(level string, outputPaths ...string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	if len(outputPaths) > 0 {
		cfg.OutputPaths = outputPaths
		cfg.ErrorOutputPaths = outputPaths
	}

	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes any buffered log entries. Terminals and pipes cannot be
// synced; those errors are ignored.
func Sync() error {
	if err := Log.Sync(); err != nil && !unsyncable(err) {
		return err
	}

	return nil
}

func unsyncable(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}
