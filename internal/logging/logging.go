// Package logging provides the opt-in diagnostic log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/1broseidon/tabswitch/internal/statepath"
)

// Logger owns the diagnostic log file and the slog.Logger writing to it.
// A disabled Logger discards everything.
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	path   string
	logger *slog.Logger
}

// New returns a Logger. When enabled is false, or the state directory
// cannot be resolved, the returned logger discards all records.
func New(enabled bool) (*Logger, error) {
	if !enabled {
		return Discard(), nil
	}
	path, err := statepath.LogPath()
	if err != nil {
		return Discard(), err
	}
	return Open(path)
}

// Discard returns a disabled Logger.
func Discard() *Logger {
	return &Logger{logger: slog.New(slog.DiscardHandler)}
}

// Open appends to the log file at path.
func Open(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return Discard(), fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return Discard(), fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	l := &Logger{file: f, path: path}
	l.logger = slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l.logger.Info("logging enabled", "path", path)
	return l, nil
}

// Write implements io.Writer for the slog handler.
func (l *Logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return len(p), nil
	}
	return l.file.Write(p)
}

var _ io.Writer = (*Logger)(nil)

// Slog returns the structured logger.
func (l *Logger) Slog() *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.logger
}

// Enabled reports whether records are written anywhere.
func (l *Logger) Enabled() bool {
	return l != nil && l.path != ""
}

// Path returns the log file path, or "" when disabled.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Reset truncates the log so it only holds the current session.
func (l *Logger) Reset() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	if err := l.file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate log: %w", err)
	}
	return nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
