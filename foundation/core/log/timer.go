// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it once on
//              successful completion.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Single emit path for completion and failure
// - 2026-10-20 v0.3.0: Failures are reported through LogError only

package log

import (
	"time"
)

// Timer measures one operation. Stop logs "<operation> completed" with the
// elapsed time at debug level. On failure call Cancel and report the error
// with LogError, so the failure is logged exactly once at its own severity.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	stopped   bool
}

func newTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    Fields{"operation": operation},
	}
}

// WithFields adds fields to the completion entry
func (t *Timer) WithFields(fields Fields) *Timer {
	for k, v := range fields {
		t.fields[k] = v
	}
	return t
}

// Stop logs the completion entry and returns the elapsed time.
// After Stop or Cancel it does nothing and returns 0.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := time.Since(t.start)
	t.logger.log(LevelDebug, t.operation+" completed", nil, elapsed, t.fields)
	return elapsed
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}
