// Package logging provides structured logging for nestlist.
// Logs go to a timestamped file per run, with cleanup by count and age.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	filePrefix = "nestlist_"
	fileSuffix = ".log"
)

// Level represents log severity levels.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a config level name ("debug", "info", "warn",
// "error") to a Level. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures the logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// LogDir is the directory to write log files (e.g., ".nestlist/logs").
	LogDir string
	// MaxLogFiles is the maximum number of log files to keep.
	MaxLogFiles int
	// MaxLogAge is the maximum age of log files before cleanup.
	MaxLogAge time.Duration
	// Console also writes to stderr. Must stay off while the TUI owns the terminal.
	Console bool
	// JSONFormat uses JSON output format for structured logs.
	JSONFormat bool
}

// DefaultConfig returns default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:       LevelInfo,
		LogDir:      ".nestlist/logs",
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
	}
}

// Logger is a structured logger for nestlist.
type Logger struct {
	slog    *slog.Logger
	config  *Config
	logFile *os.File
	logPath string
	mu      sync.Mutex
}

// New creates a new logger with the given configuration.
// It creates a log file in the configured log directory.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := filePrefix + time.Now().Format("20060102_150405") + fileSuffix
	logPath := filepath.Join(config.LogDir, name)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	var w io.Writer = logFile
	if config.Console {
		w = io.MultiWriter(logFile, os.Stderr)
	}

	logger := &Logger{
		slog:    slog.New(newHandler(w, config)),
		config:  config,
		logFile: logFile,
		logPath: logPath,
	}

	go logger.Cleanup()

	return logger, nil
}

// NewWriter creates a logger that writes to w without touching the
// filesystem. Cleanup is a no-op for such loggers.
func NewWriter(w io.Writer, config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	noFiles := *config
	noFiles.LogDir = ""
	return &Logger{
		slog:   slog.New(newHandler(w, &noFiles)),
		config: &noFiles,
	}
}

// NewNoop creates a no-op logger that discards all output.
func NewNoop() *Logger {
	return NewWriter(io.Discard, nil)
}

func newHandler(w io.Writer, config *Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	}
	if config.JSONFormat {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// LogPath returns the path to the current log file.
func (l *Logger) LogPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logPath
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		return l.logFile.Close()
	}
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a new logger with the given attributes added.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:    l.slog.With(args...),
		config:  l.config,
		logFile: l.logFile,
		logPath: l.logPath,
	}
}

// WithContext returns a logger carrying the session id and tree file stored
// in ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	newLogger := l.slog

	if sessionID, ok := ctx.Value(ContextKeySessionID).(string); ok && sessionID != "" {
		newLogger = newLogger.With("session_id", sessionID)
	}
	if file, ok := ctx.Value(ContextKeyFile).(string); ok && file != "" {
		newLogger = newLogger.With("file", file)
	}

	return &Logger{
		slog:    newLogger,
		config:  l.config,
		logFile: l.logFile,
		logPath: l.logPath,
	}
}

type contextKey string

const (
	// ContextKeySessionID is the context key for session ID.
	ContextKeySessionID contextKey = "session_id"
	// ContextKeyFile is the context key for the tree file being edited.
	ContextKeyFile contextKey = "file"
)

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSessionID adds session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, sessionID)
}

// WithFile adds the tree file path to the context.
func WithFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, ContextKeyFile, path)
}

// Cleanup removes old log files based on MaxLogFiles and MaxLogAge.
func (l *Logger) Cleanup() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config.LogDir == "" {
		return nil
	}

	entries, err := os.ReadDir(l.config.LogDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(l.config.LogDir, name),
			modTime: info.ModTime(),
		})
	}

	// Newest first
	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.After(logFiles[j].modTime)
	})

	now := time.Now()
	var removed int

	for i, lf := range logFiles {
		if lf.path == l.logPath {
			continue
		}

		shouldRemove := false
		if l.config.MaxLogFiles > 0 && i >= l.config.MaxLogFiles {
			shouldRemove = true
		}
		if l.config.MaxLogAge > 0 && now.Sub(lf.modTime) > l.config.MaxLogAge {
			shouldRemove = true
		}

		if shouldRemove {
			if err := os.Remove(lf.path); err == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		l.slog.Debug("cleaned up old log files", "count", removed)
	}

	return nil
}
