// logger.go

// Package logger is a small leveled logger writing JSON or text lines.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log line.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Format is the encoding of a log line.
type Format int

const (
	TextFormat Format = iota
	JSONFormat
)

// Fields are extra key/value pairs attached to a line.
type Fields map[string]any

// Entry is one log line as written in JSON format.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Component string `json:"component,omitempty"`
	Caller    string `json:"caller,omitempty"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Logger writes entries at or above its level. Children created with
// WithComponent share the parent's writer.
type Logger struct {
	mu        *sync.Mutex
	level     Level
	format    Format
	output    io.Writer
	component string
	now       func() time.Time
}

// Config configures New.
type Config struct {
	Level     Level
	Format    Format
	Output    io.Writer
	Component string
}

// New returns a logger. A nil Output writes to stderr so chart output on
// stdout stays clean.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Logger{
		mu:        &sync.Mutex{},
		level:     cfg.Level,
		format:    cfg.Format,
		output:    cfg.Output,
		component: cfg.Component,
		now:       time.Now,
	}
}

// NewDefault logs INFO and above as text to stderr.
func NewDefault() *Logger {
	return New(Config{Level: INFO, Format: TextFormat})
}

// WithComponent returns a child logger tagging its lines with component.
func (l *Logger) WithComponent(component string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		mu:        l.mu,
		level:     l.level,
		format:    l.format,
		output:    l.output,
		component: component,
		now:       l.now,
	}
}

// SetLevel changes the minimum level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetFormat changes the output format.
func (l *Logger) SetFormat(format Format) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = format
}

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

func (l *Logger) log(level Level, msg string, fields Fields, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	entry := Entry{
		Timestamp: l.now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Component: l.component,
		Fields:    fields,
	}
	if level == DEBUG {
		entry.Caller = caller(3)
	}
	if err != nil {
		entry.Error = err.Error()
	}

	var line string
	if l.format == JSONFormat {
		b, jerr := json.Marshal(entry)
		if jerr != nil {
			b, _ = json.Marshal(Entry{Timestamp: entry.Timestamp, Level: entry.Level, Message: msg, Error: jerr.Error()})
		}
		line = string(b) + "\n"
	} else {
		line = formatText(entry)
	}
	io.WriteString(l.output, line)
}

// caller returns "file.go:line" of the frame skip levels up.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	if i := strings.LastIndex(file, "/"); i >= 0 {
		file = file[i+1:]
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// formatText renders an entry on one line. Fields are sorted by key.
func formatText(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s", e.Timestamp, e.Level)
	if e.Component != "" {
		fmt.Fprintf(&b, " [%s]", e.Component)
	}
	b.WriteString(" " + e.Message)
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	if e.Error != "" {
		fmt.Fprintf(&b, " error=%q", e.Error)
	}
	if e.Caller != "" {
		fmt.Fprintf(&b, " (%s)", e.Caller)
	}
	b.WriteString("\n")
	return b.String()
}

func first(fields []Fields) Fields {
	if len(fields) > 0 {
		return fields[0]
	}
	return nil
}

func (l *Logger) Debug(msg string, fields ...Fields) { l.log(DEBUG, msg, first(fields), nil) }
func (l *Logger) Info(msg string, fields ...Fields)  { l.log(INFO, msg, first(fields), nil) }
func (l *Logger) Warn(msg string, fields ...Fields)  { l.log(WARN, msg, first(fields), nil) }

// Error logs msg with err attached.
func (l *Logger) Error(msg string, err error, fields ...Fields) {
	l.log(ERROR, msg, first(fields), err)
}

func (l *Logger) Debugf(format string, args ...any) { l.log(DEBUG, fmt.Sprintf(format, args...), nil, nil) }
func (l *Logger) Infof(format string, args ...any)  { l.log(INFO, fmt.Sprintf(format, args...), nil, nil) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(WARN, fmt.Sprintf(format, args...), nil, nil) }
