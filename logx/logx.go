// Package logx provides a standard logger implementation for the
// mcp-gateway project.
package logx

import (
	"log"
	"os"
	"sync"
)

// Level is the logger's verbosity threshold.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warning"
	LevelError Level = "error"
)

// Logger defines the interface for logging.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	SetLevel(level Level)
	IsLevelEnabled(level Level) bool
}

// DefaultLogger provides a basic logger implementation using the standard log package.
type DefaultLogger struct {
	logger *log.Logger
	level  Level
	mu     sync.Mutex
}

// NewDefaultLogger creates a new logger writing to stderr with standard flags.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		logger: log.New(os.Stderr, "[mcp-gateway] ", log.LstdFlags|log.Lmsgprefix),
		level:  LevelInfo,
	}
}

// NewLogger creates a new logger instance preset to the given level string
// ("debug", "info", "warning", "error"). Unknown strings default to INFO.
func NewLogger(levelStr string) Logger {
	logger := NewDefaultLogger()
	logger.level = parseLevel(levelStr)
	return logger
}

// Debug logs a message at DEBUG level
func (l *DefaultLogger) Debug(msg string, args ...interface{}) {
	if !l.IsLevelEnabled(LevelDebug) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf("DEBUG: "+msg, args...)
}

// Info logs a message at INFO level
func (l *DefaultLogger) Info(msg string, args ...interface{}) {
	if !l.IsLevelEnabled(LevelInfo) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf("INFO: "+msg, args...)
}

// Warn logs a message at WARN level
func (l *DefaultLogger) Warn(msg string, args ...interface{}) {
	if !l.IsLevelEnabled(LevelWarn) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf("WARN: "+msg, args...)
}

// Error logs a message at ERROR level
func (l *DefaultLogger) Error(msg string, args ...interface{}) {
	// We always log errors regardless of level
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf("ERROR: "+msg, args...)
}

// SetLevel updates the logging level for the DefaultLogger.
func (l *DefaultLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// IsLevelEnabled reports whether a message at level would be emitted under
// the logger's configured threshold.
func (l *DefaultLogger) IsLevelEnabled(level Level) bool {
	return levelToSeverity(level) <= levelToSeverity(l.level)
}

// Helper to map a level to an internal severity. Lower severity number =
// more restrictive = fewer messages, so "debug" must be numerically higher
// than "error" for the <= comparison in IsLevelEnabled to work.
func levelToSeverity(level Level) int {
	switch level {
	case LevelDebug:
		return 100 // Most permissive (logs everything)
	case LevelInfo:
		return 80
	case LevelWarn:
		return 50
	case LevelError:
		return 40
	default:
		return 80 // Default to INFO level
	}
}

func parseLevel(levelStr string) Level {
	switch levelStr {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		// Default to INFO for unknown level strings
		return LevelInfo
	}
}

// SetLogLevelFromString sets the logging level from a string representation
// This is a utility function to help external callers set the log level
func SetLogLevelFromString(logger Logger, levelStr string) {
	logger.SetLevel(parseLevel(levelStr))
}

// StandardLoggerAdapter adapts a standard log.Logger to implement the Logger interface
type StandardLoggerAdapter struct {
	logger *log.Logger
	level  Level
	mu     sync.Mutex
}

// NewStandardLoggerAdapter creates a Logger that wraps a standard Go log.Logger
func NewStandardLoggerAdapter(logger *log.Logger) Logger {
	if logger == nil {
		logger = log.New(os.Stderr, "[mcp-gateway] ", log.LstdFlags)
	}
	return &StandardLoggerAdapter{
		logger: logger,
		level:  LevelInfo,
	}
}

// Debug logs a debug message
func (a *StandardLoggerAdapter) Debug(format string, v ...interface{}) {
	if !a.IsLevelEnabled(LevelDebug) {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger.Printf("DEBUG: "+format, v...)
}

// Info logs an info message
func (a *StandardLoggerAdapter) Info(format string, v ...interface{}) {
	if !a.IsLevelEnabled(LevelInfo) {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger.Printf("INFO: "+format, v...)
}

// Warn logs a warning message
func (a *StandardLoggerAdapter) Warn(format string, v ...interface{}) {
	if !a.IsLevelEnabled(LevelWarn) {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger.Printf("WARN: "+format, v...)
}

// Error logs an error message
func (a *StandardLoggerAdapter) Error(format string, v ...interface{}) {
	// We always log errors regardless of level
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger.Printf("ERROR: "+format, v...)
}

// SetLevel sets the logging level
func (a *StandardLoggerAdapter) SetLevel(level Level) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.level = level
}

// IsLevelEnabled reports whether a message at level would be emitted.
func (a *StandardLoggerAdapter) IsLevelEnabled(level Level) bool {
	return levelToSeverity(level) <= levelToSeverity(a.level)
}

// Ensure interface compliance
var (
	_ Logger = (*DefaultLogger)(nil)
	_ Logger = (*StandardLoggerAdapter)(nil)
)
