// Package observability is Trueflow's logging surface: a small Logger
// interface with a stdlib-log-backed DefaultLogger, human or JSON
// formatted, level-gated — the same shape as the teacher's
// internal/adapter/llm/http.Logger, generalized from LLM request/response
// events to scan/mark/ledger events.
package observability

import (
	"fmt"
	"log"
	"time"
)

// Logger records scan and ledger events at three levels.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a structured key/value attached to a log line.
type Field struct {
	Key   string
	Value any
}

// F builds a Field inline at the call site.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Level controls logging verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// ParseLevel resolves a config string to a Level, defaulting to LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format selects the on-the-wire shape of a log line.
type Format int

const (
	FormatHuman Format = iota
	FormatJSON
)

// ParseFormat resolves a config string to a Format, defaulting to FormatHuman.
func ParseFormat(s string) Format {
	if s == "json" {
		return FormatJSON
	}
	return FormatHuman
}

// DefaultLogger writes structured lines to the standard log package.
type DefaultLogger struct {
	level  Level
	format Format
}

// NewDefaultLogger builds a DefaultLogger at the given level and format.
func NewDefaultLogger(level Level, format Format) *DefaultLogger {
	return &DefaultLogger{level: level, format: format}
}

func (l *DefaultLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, "debug", msg, fields) }
func (l *DefaultLogger) Info(msg string, fields ...Field)  { l.log(LevelInfo, "info", msg, fields) }
func (l *DefaultLogger) Error(msg string, fields ...Field) { l.log(LevelError, "error", msg, fields) }

func (l *DefaultLogger) log(level Level, levelName, msg string, fields []Field) {
	if level < l.level {
		return
	}
	if l.format == FormatJSON {
		log.Printf(`{"level":%q,"ts":%q,"msg":%q%s}`, levelName, time.Now().UTC().Format(time.RFC3339), msg, jsonFields(fields))
		return
	}
	log.Printf("[%s] %s%s", levelName, msg, humanFields(fields))
}

func jsonFields(fields []Field) string {
	var out string
	for _, f := range fields {
		out += fmt.Sprintf(`,%q:%q`, f.Key, fmt.Sprint(f.Value))
	}
	return out
}

func humanFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	out := " ("
	for i, f := range fields {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%v", f.Key, f.Value)
	}
	return out + ")"
}
