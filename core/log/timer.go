// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation took and logs the result
//              through the owning logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Failed operations log at debug with success=false

package log

import (
	"time"
)

// Timer represents a timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
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

// Stop logs "<operation> completed" at debug level with the elapsed time.
// Only the first call logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError is Stop for a failed operation: it logs "<operation>
// failed" with err attached and success=false. The line is a debug timing
// record; reporting err itself is left to LogError. A nil err behaves like
// Stop.
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(Fields{
		"operation": t.operation,
		"success":   err == nil,
	})
	message := t.operation + " completed"
	if err != nil {
		message = t.operation + " failed"
	}

	if !t.logger.IsLevelEnabled(LevelDebug) {
		return elapsed
	}

	entryLogger := t.logger.WithFields(fields)
	entryLogger.logTimed(LevelDebug, message, err, elapsed)
	return elapsed
}
