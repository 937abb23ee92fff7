// Package logging owns the process logger. It starts in bootstrap mode
// (text on stderr) and is upgraded once configuration is known to fan out to
// stderr and a rotated JSON log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation controls log file rotation. Zero values take lumberjack's defaults.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithConsole sets the console writer. Defaults to os.Stderr.
func WithConsole(w io.Writer) Option {
	return func(m *Manager) {
		m.console = w
	}
}

// Manager handles logger lifecycle including bootstrap-to-full mode transitions.
// Components should obtain a logger via Logger() and use it for all logging.
type Manager struct {
	handler *SwappableHandler
	logger  *slog.Logger
	console io.Writer
	logFile *lumberjack.Logger
	level   *slog.LevelVar
	mu      sync.Mutex
}

// NewManager creates a logging manager in bootstrap mode.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		console: os.Stderr,
		level:   new(slog.LevelVar),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.level.Set(DefaultLevel)

	bootstrap := slog.NewTextHandler(m.console, &slog.HandlerOptions{Level: m.level})
	m.handler = NewSwappableHandler(bootstrap)
	m.logger = slog.New(m.handler)

	return m
}

// Logger returns the current logger instance.
// The returned logger is stable across Upgrade calls.
func (m *Manager) Logger() *slog.Logger {
	return m.logger
}

// Upgrade switches to full mode: text on the console plus JSON to a rotated
// file at logFilePath. The file is created up front so an unusable path is
// reported here rather than silently dropped on first write.
func (m *Manager) Upgrade(logFilePath string, level slog.Level, rotation Rotation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %q; %w", dir, err)
	}

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q; %w", logFilePath, err)
	}
	_ = f.Close()

	if m.logFile != nil {
		_ = m.logFile.Close()
	}
	m.logFile = &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}

	m.level.Set(level)
	opts := &slog.HandlerOptions{Level: m.level}

	m.handler.Swap(slogmulti.Fanout(
		slog.NewTextHandler(m.console, opts),
		slog.NewJSONHandler(m.logFile, opts),
	))

	return nil
}

// SetLevel changes the log level at runtime.
func (m *Manager) SetLevel(level slog.Level) {
	m.level.Set(level)
}

// Close releases the log file, if any. Safe to call more than once.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.logFile != nil {
		err := m.logFile.Close()
		m.logFile = nil
		return err
	}
	return nil
}
