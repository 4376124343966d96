// global.go

package logger

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
)

var global atomic.Pointer[Logger]

func init() {
	l := NewDefault()
	if lvl, err := ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		l.SetLevel(lvl)
	}
	if f, err := ParseFormat(os.Getenv("LOG_FORMAT")); err == nil {
		l.SetFormat(f)
	}
	global.Store(l)
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

// ParseFormat parses "text" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	default:
		return TextFormat, fmt.Errorf("unknown log format %q", s)
	}
}

// Global returns the process-wide logger.
func Global() *Logger { return global.Load() }

// SetGlobal replaces the process-wide logger.
func SetGlobal(l *Logger) { global.Store(l) }

func Debug(msg string, fields ...Fields) { Global().log(DEBUG, msg, first(fields), nil) }
func Info(msg string, fields ...Fields)  { Global().log(INFO, msg, first(fields), nil) }
func Warn(msg string, fields ...Fields)  { Global().log(WARN, msg, first(fields), nil) }

// Error logs msg with err on the global logger.
func Error(msg string, err error, fields ...Fields) {
	Global().log(ERROR, msg, first(fields), err)
}
