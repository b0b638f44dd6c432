// Package logging provides the shared process logger.
//
// All output goes to stderr: when the MCP transport runs over stdio, stdout
// belongs to the protocol and must stay clean. Debug logging is enabled by
// setting the DEBUG environment variable.
package logging

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	defaultLogger *log.Logger
	once          sync.Once
)

// Get returns the process logger, creating it on first use.
func Get() *log.Logger {
	once.Do(func() {
		level := log.InfoLevel
		if os.Getenv("DEBUG") != "" {
			level = log.DebugLevel
		}
		defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           level,
			Prefix:          "dngbridge",
		})
	})
	return defaultLogger
}

// Package-level convenience functions for quick logging.

func Debug(msg string, keyvals ...interface{}) {
	Get().Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	Get().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	Get().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	Get().Error(msg, keyvals...)
}
