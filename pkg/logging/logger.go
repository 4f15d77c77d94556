package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents a log level.
type Level int

const (
	// DebugLevel logs are voluminous (per-line parse findings) and are
	// usually disabled.
	DebugLevel Level = iota
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel is used for recoverable parse findings such as skipped
	// malformed lines.
	WarnLevel
	// ErrorLevel is used for fatal conditions surfaced to the caller.
	ErrorLevel
)

// String returns the string representation of a log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level, defaulting to InfoLevel.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DebugLevel
	case "INFO", "info":
		return InfoLevel
	case "WARN", "warn", "WARNING", "warning":
		return WarnLevel
	case "ERROR", "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// Logger is the interface for structured logging.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// With creates a child logger with the given fields pre-set.
	With(fields ...Field) Logger
	// SetLevel sets the minimum log level.
	SetLevel(level Level)
}

// entry is the JSON shape of one log line.
type entry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// JSONLogger implements Logger with one JSON object per line.
type JSONLogger struct {
	writer io.Writer
	level  Level
	fields []Field
	mu     sync.Mutex
}

// NewJSONLogger creates a logger writing to the given writer.
func NewJSONLogger(writer io.Writer, level Level) *JSONLogger {
	return &JSONLogger{writer: writer, level: level}
}

// NewDefaultLogger creates a logger that writes to stderr at INFO level.
func NewDefaultLogger() *JSONLogger {
	return NewJSONLogger(os.Stderr, InfoLevel)
}

func (l *JSONLogger) log(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var fieldMap map[string]any
	if len(l.fields)+len(fields) > 0 {
		fieldMap = make(map[string]any, len(l.fields)+len(fields))
		for _, f := range l.fields {
			fieldMap[f.Key] = f.Value
		}
		for _, f := range fields {
			fieldMap[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(entry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
		Fields:  fieldMap,
	})
	if err != nil {
		fmt.Fprintf(l.writer, "[ERROR] failed to marshal log entry: %v\n", err)
		return
	}
	l.writer.Write(data)
	l.writer.Write([]byte("\n"))
}

func (l *JSONLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }
func (l *JSONLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields) }
func (l *JSONLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields) }
func (l *JSONLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }

// With creates a child logger with the given fields pre-set.
func (l *JSONLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &JSONLogger{writer: l.writer, level: l.level, fields: merged}
}

// SetLevel sets the minimum log level.
func (l *JSONLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// NopLogger discards everything (useful for library callers and tests).
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (n NopLogger) With(fields ...Field) Logger     { return n }
func (NopLogger) SetLevel(level Level)              {}

// NewNopLogger creates a logger that discards all output.
func NewNopLogger() Logger {
	return NopLogger{}
}
