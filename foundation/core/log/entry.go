// File: entry.go
// Title: Log Entry Structure
// Description: Defines the Entry record handed to formatters and the Fields
//              map used to attach structured data to a log call.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured entries
// - 2026-10-19 v0.2.0: Dropped request/user ids, sorted field keys
// - 2026-10-20 v0.3.0: Removed unused field helpers

package log

import (
	"sort"
	"time"
)

// Entry is one log record as seen by a Formatter
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Error         error
	Duration      time.Duration
	Caller        *CallerInfo
}

// CallerInfo contains information about where the log was called from
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Clone returns a copy of f, or nil for a nil f
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithCaller sets the call site and returns e
func (e *Entry) WithCaller(function, file string, line int) *Entry {
	e.Caller = &CallerInfo{
		Function: function,
		File:     file,
		Line:     line,
	}
	return e
}
