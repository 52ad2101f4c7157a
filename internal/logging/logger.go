// Package logging provides structured logging for the CLI and the TUI.
// The TUI owns the terminal, so in that mode logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Mode selects where log output goes
type Mode string

const (
	ModeCLI Mode = "cli"
	ModeTUI Mode = "tui"
)

// Logger wraps zerolog with a per-run session id
type Logger struct {
	zlog    zerolog.Logger
	session string
	closer  io.Closer
}

// New creates a logger writing to w. CLI output is human readable;
// anything else is written as JSON lines.
func New(mode Mode, w io.Writer, level zerolog.Level) *Logger {
	if mode == ModeCLI {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
		}
	}

	session := uuid.NewString()
	zlog := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", session).
		Logger()

	return &Logger{zlog: zlog, session: session}
}

// NewCLI creates a console logger on stderr
func NewCLI(level zerolog.Level) *Logger {
	return New(ModeCLI, os.Stderr, level)
}

// NewFile creates a JSON logger appending to path. Close releases the file.
func NewFile(path string, level zerolog.Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := New(ModeTUI, f, level)
	l.closer = f
	return l, nil
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// ParseLevel converts a settings value to a zerolog level, defaulting to info
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level: %s", s)
	}
	return level, nil
}

// Zerolog returns the underlying logger for packages that take one directly
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// Session returns the id attached to every entry
func (l *Logger) Session() string {
	return l.session
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
