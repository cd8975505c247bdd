// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages including JSON, text,
//              console and logfmt. Field keys are emitted in sorted order so
//              output is stable across runs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-19 v0.2.0: Console formatter renders with lipgloss styles

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs styled logs for interactive terminals
	FormatConsole

	// FormatLogfmt outputs logfmt structured logs (key=value pairs)
	FormatLogfmt
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	case "logfmt":
		return FormatLogfmt, nil
	default:
		return FormatJSON, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry as a single JSON line
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+8)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1e6
	}

	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "15:04:05",
	}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(strings.Join(f.parts(entry, nil), " ") + "\n"), nil
}

// parts builds the text columns; style, when set, decorates individual columns
func (f *TextFormatter) parts(entry *Entry, style *consoleStyles) []string {
	var parts []string

	if !f.DisableTimestamp {
		ts := entry.Timestamp.Format(f.TimestampFormat)
		if style != nil {
			ts = style.muted.Render(ts)
		}
		parts = append(parts, ts)
	}

	level := fmt.Sprintf("[%s]", entry.Level.ShortString())
	if style != nil {
		level = style.level(entry.Level).Render(level)
	}
	parts = append(parts, level)

	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Logger))
	}

	if entry.CorrelationID != "" {
		parts = append(parts, fmt.Sprintf("(run=%s)", entry.CorrelationID))
	}

	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		fieldParts := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.Keys() {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		fields := fmt.Sprintf("[%s]", strings.Join(fieldParts, " "))
		if style != nil {
			fields = style.muted.Render(fields)
		}
		parts = append(parts, fields)
	}

	if entry.Error != nil {
		errText := fmt.Sprintf("error=%q", entry.Error.Error())
		if style != nil {
			errText = style.err.Render(errText)
		}
		parts = append(parts, errText)
	}

	if entry.Duration > 0 {
		parts = append(parts, fmt.Sprintf("duration=%s", entry.Duration))
	}

	return parts
}

// consoleStyles holds the lipgloss styles used by the console formatter
type consoleStyles struct {
	trace lipgloss.Style
	debug lipgloss.Style
	info  lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	fatal lipgloss.Style
	audit lipgloss.Style
	muted lipgloss.Style
	err   lipgloss.Style
}

func newConsoleStyles() *consoleStyles {
	return &consoleStyles{
		trace: lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")),
		debug: lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
		info:  lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
		fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		fatal: lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true).Underline(true),
		audit: lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		err:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}

func (s *consoleStyles) level(l Level) lipgloss.Style {
	switch l {
	case LevelTrace:
		return s.trace
	case LevelDebug:
		return s.debug
	case LevelInfo:
		return s.info
	case LevelWarn:
		return s.warn
	case LevelError:
		return s.fail
	case LevelFatal:
		return s.fatal
	case LevelAudit:
		return s.audit
	default:
		return s.muted
	}
}

// ConsoleFormatter formats log entries for interactive terminals
type ConsoleFormatter struct {
	// DisableColors falls back to plain text output
	DisableColors bool

	*TextFormatter
	styles *consoleStyles
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{
		TextFormatter: NewTextFormatter(),
		styles:        newConsoleStyles(),
	}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	if f.DisableColors {
		return f.TextFormatter.Format(entry)
	}
	return []byte(strings.Join(f.parts(entry, f.styles), " ") + "\n"), nil
}

// LogfmtFormatter formats log entries in logfmt format (key=value pairs)
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a new logfmt formatter
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry in logfmt format
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	parts := []string{
		fmt.Sprintf("timestamp=%s", entry.Timestamp.Format(f.TimestampFormat)),
		fmt.Sprintf("level=%s", entry.Level.String()),
		fmt.Sprintf("message=%q", entry.Message),
	}

	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("logger=%s", entry.Logger))
	}

	if entry.CorrelationID != "" {
		parts = append(parts, fmt.Sprintf("correlation_id=%s", entry.CorrelationID))
	}

	for _, k := range entry.Fields.Keys() {
		switch v := entry.Fields[k].(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s=%q", k, v))
		case error:
			parts = append(parts, fmt.Sprintf("%s=%q", k, v.Error()))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	if entry.Duration > 0 {
		parts = append(parts, fmt.Sprintf("duration_ms=%.3f", float64(entry.Duration.Nanoseconds())/1e6))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}
