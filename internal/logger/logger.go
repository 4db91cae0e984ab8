// Package logger provides the global diagnostic logger.
// Logs go to a rotated file only; the console stays clean for command
// output and the interactive prompt. Before InitWithFile the logger is
// a nop, so library code can log unconditionally.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger instance
	Log zerolog.Logger

	// fileWriter is the file output for logging (with rotation)
	fileWriter *lumberjack.Logger

	// logContext holds the interactive session ID for log entries (optional, may be empty)
	logContext   logContextData
	logContextMu sync.RWMutex
)

// logContextData holds optional session context for log entries.
type logContextData struct {
	Session string
}

// SetSession tags all subsequent log entries with an interactive session ID.
// Pass an empty string to clear. Thread-safe.
func SetSession(session string) {
	logContextMu.Lock()
	defer logContextMu.Unlock()
	logContext = logContextData{Session: session}
}

// ClearSession clears the session context.
func ClearSession() {
	SetSession("")
}

// getContext returns current context (thread-safe read).
func getContext() logContextData {
	logContextMu.RLock()
	defer logContextMu.RUnlock()
	return logContext
}

// addContext adds the session field to an event if set.
func addContext(event *zerolog.Event) *zerolog.Event {
	ctx := getContext()
	if ctx.Session != "" {
		event = event.Str("session", ctx.Session)
	}
	return event
}

// LoggingConfig holds configuration for file-based logging.
// This matches internal/config.LoggingConfig but is duplicated here
// to avoid circular imports.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true // enabled by default
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 50 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 50
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// Init initializes the global logger as a nop.
// Used before configuration is loaded and in tests. Use InitWithFile
// to enable file logging.
func Init() {
	Log = zerolog.Nop()
}

// InitWithFile initializes the logger with rotated file output.
// If logsDir is empty or cfg indicates file logging is disabled,
// the logger stays a nop. Nothing is ever written to the console.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if logsDir == "" || cfg == nil || !cfg.IsFileEnabled() {
		Log = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := filepath.Join(logsDir, "dockhand.log")

	fileWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    cfg.GetMaxSizeMB(),  // MB
		MaxAge:     cfg.GetMaxAgeDays(), // days
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
		Compress:   false,
	}

	Log = zerolog.New(fileWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}

// SetLevel re-levels the global logger in place. Unknown level names are
// ignored. Long-lived sessions call this when the settings file changes
// so a level edit takes effect without a restart.
func SetLevel(name string) {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return
	}
	Log = Log.Level(level)
}

// CloseFileWriter closes the file writer if it exists.
// Call this on program shutdown for clean log file closure.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil // Prevent double-close and writes to closed file
		return err
	}
	return nil
}

// GetLogFilePath returns the path to the current log file, or empty string if file logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return addContext(Log.Debug())
}

// Info logs an info message.
func Info() *zerolog.Event {
	return addContext(Log.Info())
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return addContext(Log.Warn())
}

// Error logs an error message.
func Error() *zerolog.Event {
	return addContext(Log.Error())
}

// Fatal logs a fatal message and exits.
func Fatal() *zerolog.Event {
	return addContext(Log.Fatal())
}

// WithField returns a logger with an additional field.
func WithField(key string, value interface{}) zerolog.Logger {
	return Log.With().Interface(key, value).Logger()
}

// SharedLogger is an injectable handle on the process-wide logger. Events
// created through it pick up the session context the same way the
// package-level functions do.
type SharedLogger struct{}

func (SharedLogger) Debug() *zerolog.Event { return Debug() }
func (SharedLogger) Info() *zerolog.Event  { return Info() }
func (SharedLogger) Warn() *zerolog.Event  { return Warn() }
func (SharedLogger) Error() *zerolog.Event { return Error() }

// Shared returns the handle wired into iostreams at process start.
func Shared() SharedLogger { return SharedLogger{} }
