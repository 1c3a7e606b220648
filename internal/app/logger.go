package app

import (
	"encoding/json"
	"io"
	"time"
)

// Fields carries structured context on a log event.
type Fields map[string]any

// Logger writes one JSON object per event to its writer.
type Logger struct {
	out io.Writer
}

type logEvent struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
}

func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{out: out}
}

func (l *Logger) Info(message string, fields Fields) {
	l.write("info", message, fields)
}

func (l *Logger) Error(message string, fields Fields) {
	l.write("error", message, fields)
}

func (l *Logger) write(level, message string, fields Fields) {
	evt := logEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Message:   message,
		Fields:    fields,
	}
	payload, _ := json.Marshal(evt)
	payload = append(payload, '\n')
	_, _ = l.out.Write(payload)
}
