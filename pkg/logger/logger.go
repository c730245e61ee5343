// Package logger exposes the process-wide structured logger used by
// every diam-core package.
package logger

import (
	"github.com/hsdfat/go-zlog/logger"
	"go.uber.org/zap"
)

// Log is the shared logger instance.
var Log logger.LoggerI = logger.NewLogger()

func init() {
	Log.(*logger.Logger).SugaredLogger = Log.(*logger.Logger).SugaredLogger.WithOptions(zap.AddCallerSkip(1))
}

// SetLevel adjusts the global log level. Valid levels: "debug",
// "info", "warn", "error", "fatal".
func SetLevel(level string) {
	logger.SetLevel(level)
}

// WithFields returns a child logger carrying the given key value
// pairs, e.g. WithFields("conn_id", id, "state", st).
func WithFields(args ...any) logger.LoggerI {
	return Log.With(args...).(logger.LoggerI)
}
