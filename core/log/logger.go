// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type used by the textkit CLI. Loggers
//              are immutable from the caller's point of view: every With*
//              method returns a configured copy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: LogError adds root cause and alert fields

package log

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	tkerror "github.com/msto63/textkit/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields
	requestID     string
	command       string

	mutex sync.RWMutex

	// writeMu serializes writes across a logger and its clones
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger writing text at DefaultLevel to stderr
func New() *Logger {
	return NewWithConfig(Config{
		Level:  DefaultLevel(),
		Format: FormatText,
	})
}

// NewWithConfig creates a new logger with the specified configuration. A nil
// Output falls back to os.Stderr so log lines never mix with command output.
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
		writeMu:       &sync.Mutex{},
	}
	if logger.output == nil {
		logger.output = os.Stderr
	}
	return logger
}

// WithLevel sets the minimum log level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat sets the log format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput sets the output destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	return clone
}

// WithName sets the logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithRequestID tags every entry with the given run identifier
func (l *Logger) WithRequestID(requestID string) *Logger {
	clone := l.clone()
	clone.requestID = requestID
	return clone
}

// WithCommand tags every entry with the CLI command path
func (l *Logger) WithCommand(command string) *Logger {
	clone := l.clone()
	clone.command = command
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Audit logs an audit level message (always logged regardless of level)
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err at LevelForError(err). A *tkerror.Error anywhere in the
// chain contributes its code, severity, operation and details as fields,
// plus error_root_cause when it wraps a foreign error and error_alert for
// high and critical severities.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var tkErr *tkerror.Error
	if !errors.As(err, &tkErr) {
		l.ErrorWithErr(err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     tkErr.Code().String(),
		"error_severity": tkErr.Severity().String(),
	}
	if op := tkErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range tkErr.Details() {
		fields["error_"+k] = v
	}
	if root := tkErr.RootCause(); root != error(tkErr) {
		fields["error_root_cause"] = root.Error()
	}
	if tkErr.Severity().ShouldAlert() {
		fields["error_alert"] = true
	}

	if LevelForError(err) == LevelWarn {
		l.WarnWithErr(tkErr.Message(), err, fields)
		return
	}
	l.ErrorWithErr(tkErr.Message(), err, fields)
}

// LevelForError returns the level LogError uses for err: warn for low
// severity errors (rejected input), error for everything else.
func LevelForError(err error) Level {
	var tkErr *tkerror.Error
	if errors.As(err, &tkErr) && tkErr.Severity() == tkerror.SeverityLow {
		return LevelWarn
	}
	return LevelError
}

// StartTimer creates and starts a timer for operation
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.emit(level, message, err, 0, fields...)
}

// logTimed is log with a measured duration attached to the entry
func (l *Logger) logTimed(level Level, message string, err error, duration time.Duration) {
	l.emit(level, message, err, duration)
}

func (l *Logger) emit(level Level, message string, err error, duration time.Duration, fields ...Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message).WithError(err).WithDuration(duration)
	entry.Logger = l.name
	entry.RequestID = l.requestID
	entry.Command = l.command

	entry.WithFields(l.contextFields)
	for _, fieldSet := range fields {
		entry.WithFields(fieldSet)
	}

	formatter := l.formatter
	output := l.output
	l.mutex.RUnlock()

	formatted, formatErr := formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.writeMu.Lock()
	_, _ = output.Write(formatted)
	l.writeMu.Unlock()
}

// clone creates a copy of the logger for immutable operations
func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		requestID:     l.requestID,
		command:       l.command,
		contextFields: make(Fields, len(l.contextFields)),
		writeMu:       l.writeMu,
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return clone
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelAudit, Output: io.Discard})
}
