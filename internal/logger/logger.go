// Package logger writes codepad's diagnostic log. The terminal is owned by
// the UI, so everything goes to a file (DefaultLogPath unless Init is
// called with another path).
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultLogPath is where the log goes when Init was never called.
const DefaultLogPath = "/tmp/codepad-debug.log"

var (
	mu       sync.Mutex
	base     *slog.Logger
	levelVar = new(slog.LevelVar)
	out      io.WriteCloser
	path     string
	level    = LevelInfo
)

// SetLevel sets the minimum log level to output
func SetLevel(l LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	levelVar.Set(l.slogLevel())
}

// SetDebug toggles between LevelDebug and LevelInfo.
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}
}

// Init opens the log file at p. Calling it again after a successful Init is a no-op.
func Init(p string) error {
	mu.Lock()
	defer mu.Unlock()

	if base != nil {
		return nil
	}
	return open(p)
}

// open must be called with mu held.
func open(p string) error {
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", p, err)
	}
	out = f
	path = p
	levelVar.Set(level.slogLevel())
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("Logger initialized", "path", p)
	return nil
}

// current returns the base logger, opening DefaultLogPath lazily.
// Must be called with mu held.
func current() *slog.Logger {
	if base == nil {
		if err := open(DefaultLogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			base = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
	}
	return base
}

func logf(l slog.Level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	lg := current()
	if !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, fmt.Sprintf(format, args...))
}

// Debug writes a debug message (only if level is LevelDebug)
func Debug(format string, args ...interface{}) { logf(slog.LevelDebug, format, args...) }

// Info writes an info message
func Info(format string, args ...interface{}) { logf(slog.LevelInfo, format, args...) }

// Warn writes a warning message
func Warn(format string, args ...interface{}) { logf(slog.LevelWarn, format, args...) }

// Error writes an error message
func Error(format string, args ...interface{}) { logf(slog.LevelError, format, args...) }

// WithComponent returns a structured logger tagged with component.
//
//	log := logger.WithComponent("execution")
//	log.Debug("run started", "requestID", id, "language", lang)
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current().With(slog.String("component", component))
}

// Path returns the file currently being written, or "" before first use.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return path
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		out.Close()
		out = nil
	}
	base = nil
}

// Reset restores the initial state so tests can re-Init.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		out.Close()
		out = nil
	}
	base = nil
	path = ""
	level = LevelInfo
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes the log file at p (DefaultLogPath when p is empty).
// It returns the number of files removed.
func ClearLogs(p string) (int, error) {
	if p == "" {
		p = DefaultLogPath
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}
