// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it when the
//              operation completes or fails.
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. A second call is a no-op
// and returns zero.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		entry := NewEntry(t.level, t.operation+" completed")
		entry.Duration = elapsed
		t.logger.write(entry, t.fields.Merge(Fields{"operation": t.operation}))
	}
	return elapsed
}

// StopWithError stops the timer and logs err at error level with the
// elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		entry := NewEntry(LevelError, t.operation+" failed")
		entry.Duration = elapsed
		entry.Error = err
		t.logger.write(entry, t.fields.Merge(Fields{"operation": t.operation}))
	}
	return elapsed
}
