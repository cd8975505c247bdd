// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with contextual fields, pluggable formatters and integration
//              with the structured error type.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Removed async worker, writes serialized by a mutex
// - 2026-10-20 v0.3.0: Immutable after construction, default logger removed

package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	tioerror "github.com/JoyPoint/textio/foundation/core/error"
)

// Logger writes structured entries to one output.
// With* methods return modified copies; a Logger is never changed after
// construction and is safe for concurrent use.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	fields        Fields
	correlationID string

	enableCaller     bool
	callerSkipFrames int

	// shared by all copies writing to the same output
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// NewWithConfig creates a logger. A nil Output writes to stderr.
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	return &Logger{
		level:            config.Level,
		formatter:        GetFormatter(config.Format),
		output:           output,
		name:             config.Name,
		fields:           make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
		writeMu:          &sync.Mutex{},
	}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return NewWithConfig(Config{Level: LevelFatal, Output: io.Discard})
}

// WithFields returns a copy that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.fields[k] = v
	}
	return clone
}

// WithCorrelationID returns a copy stamping entries with correlationID
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	clone := l.clone()
	clone.correlationID = correlationID
	return clone
}

func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, 0, fields...)
}

func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, 0, fields...)
}

func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, 0, fields...)
}

func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, 0, fields...)
}

func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, 0, fields...)
}

// LogError logs err once, at a level derived from its severity: low is
// info, medium is warn, anything else is error. Structured errors
// contribute their code, operation and details as error_* fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var tErr *tioerror.Error
	if !errors.As(err, &tErr) {
		l.log(LevelError, err.Error(), err, 0)
		return
	}

	fields := Fields{
		"error_code":     tErr.Code().String(),
		"error_severity": tErr.Severity().String(),
	}
	if op := tErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range tErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch tErr.Severity() {
	case tioerror.SeverityLow:
		level = LevelInfo
	case tioerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), err, 0, fields)
}

// StartTimer starts timing operation; see Timer
func (l *Logger) StartTimer(operation string) *Timer {
	return newTimer(l, operation)
}

// GetLevel returns the minimum level this logger writes
func (l *Logger) GetLevel() Level {
	return l.level
}

// log builds and writes one entry. Every exported logging method calls it
// directly so the caller frame sits at a fixed depth.
func (l *Logger) log(level Level, message string, err error, elapsed time.Duration, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Duration = elapsed

	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	if l.enableCaller {
		// skip log and the exported method
		if pc, file, line, ok := runtime.Caller(2 + l.callerSkipFrames); ok {
			entry.WithCaller(funcName(pc), filepath.Base(file), line)
		}
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(formatted)
}

// funcName returns the unqualified function name for pc
func funcName(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if idx := strings.LastIndex(name, "."); idx != -1 {
		name = name[idx+1:]
	}
	return name
}

func (l *Logger) clone() *Logger {
	clone := *l
	clone.fields = l.fields.Clone()
	if clone.fields == nil {
		clone.fields = make(Fields)
	}
	return &clone
}
