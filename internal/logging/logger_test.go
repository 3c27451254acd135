package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestLogger(t *testing.T, config *Config) *Logger {
	t.Helper()
	if config.LogDir == "" {
		config.LogDir = t.TempDir()
	}
	logger, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = logger.Close() })
	return logger
}

func readLog(t *testing.T, logger *Logger) string {
	t.Helper()
	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestNew(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	logger := newTestLogger(t, &Config{
		Level:       LevelDebug,
		LogDir:      logDir,
		MaxLogFiles: 5,
		MaxLogAge:   24 * time.Hour,
	})

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Log directory was not created")
	}

	logPath := logger.LogPath()
	if !strings.HasPrefix(filepath.Base(logPath), "nestlist_") || !strings.HasSuffix(logPath, ".log") {
		t.Errorf("LogPath() = %q, want nestlist_*.log", logPath)
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}

func TestNewWithNilConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	_ = os.Chdir(tmpDir)
	defer func() { _ = os.Chdir(originalDir) }()

	logger, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, ".nestlist", "logs")); err != nil {
		t.Errorf("default log dir not created: %v", err)
	}
}

func TestNewNoop(t *testing.T) {
	logger := NewNoop()
	if logger == nil {
		t.Fatal("NewNoop() returned nil")
	}

	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")

	if logger.LogPath() != "" {
		t.Errorf("LogPath() = %q, want empty", logger.LogPath())
	}
	if err := logger.Cleanup(); err != nil {
		t.Errorf("Cleanup() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, &Config{Level: LevelDebug, LogDir: "should-not-be-used"})

	logger.Debug("to buffer", "key", "value")

	if !strings.Contains(buf.String(), "to buffer") || !strings.Contains(buf.String(), "key=value") {
		t.Errorf("buffer = %q, want debug line with attribute", buf.String())
	}
	if _, err := os.Stat("should-not-be-used"); err == nil {
		t.Error("NewWriter() must not create the log directory")
	}
}

func TestLogLevels(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelDebug})

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	content := readLog(t, logger)
	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(content, want) {
			t.Errorf("Log file missing %q", want)
		}
	}
}

func TestLogLevelFiltering(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelWarn})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	content := readLog(t, logger)
	if strings.Contains(content, "debug message") {
		t.Error("Debug message should have been filtered")
	}
	if strings.Contains(content, "info message") {
		t.Error("Info message should have been filtered")
	}
	if !strings.Contains(content, "warn message") {
		t.Error("Warn message should be present")
	}
	if !strings.Contains(content, "error message") {
		t.Error("Error message should be present")
	}
}

func TestJSONFormat(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo, JSONFormat: true})

	logger.Info("test message", "key", "value")

	content := readLog(t, logger)
	if !strings.Contains(content, `"msg"`) {
		t.Error("JSON format should contain 'msg' key")
	}
	if !strings.Contains(content, `"key"`) {
		t.Error("JSON format should contain 'key' key")
	}
}

func TestWith(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo})

	logger.With("list", "groceries").Info("opened list")

	if !strings.Contains(readLog(t, logger), "groceries") {
		t.Error("Log should contain list attribute")
	}
}

func TestWithContext(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo})

	ctx := context.Background()
	ctx = WithSessionID(ctx, "sess-123")
	ctx = WithFile(ctx, "lists.yaml")

	logger.WithContext(ctx).Info("context message")

	content := readLog(t, logger)
	if !strings.Contains(content, "session_id=sess-123") {
		t.Error("Log should contain session_id from context")
	}
	if !strings.Contains(content, "file=lists.yaml") {
		t.Error("Log should contain file from context")
	}
}

func TestWithContextEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, nil)

	logger.WithContext(context.Background()).Info("plain")

	if strings.Contains(buf.String(), "session_id") {
		t.Errorf("unexpected session_id in %q", buf.String())
	}
}

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if len(a) != 36 {
		t.Errorf("NewSessionID() = %q, want a 36-char uuid", a)
	}
	if a == b {
		t.Error("NewSessionID() returned the same id twice")
	}
}

func TestCleanup(t *testing.T) {
	tmpDir := t.TempDir()

	for i := 0; i < 15; i++ {
		name := filepath.Join(tmpDir, "nestlist_20240101_00000"+string(rune('0'+i%10))+".log")
		if err := os.WriteFile(name, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create test log file: %v", err)
		}
	}
	// Files without the prefix are left alone.
	other := filepath.Join(tmpDir, "other.log")
	if err := os.WriteFile(other, []byte("keep"), 0644); err != nil {
		t.Fatalf("Failed to create unrelated file: %v", err)
	}

	config := &Config{
		Level:       LevelInfo,
		LogDir:      tmpDir,
		MaxLogFiles: 5,
	}

	logger, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := logger.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	logger.Close()

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read log dir: %v", err)
	}

	count := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "nestlist_") {
			count++
		}
	}

	// At most MaxLogFiles plus the current log.
	if count > config.MaxLogFiles+1 {
		t.Errorf("Expected at most %d log files, got %d", config.MaxLogFiles+1, count)
	}
	if _, err := os.Stat(other); err != nil {
		t.Error("Cleanup() removed a file it does not own")
	}
}

func TestCleanupByAge(t *testing.T) {
	tmpDir := t.TempDir()
	old := filepath.Join(tmpDir, "nestlist_20200101_000000.log")
	if err := os.WriteFile(old, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	logger := newTestLogger(t, &Config{LogDir: tmpDir, MaxLogAge: 24 * time.Hour})
	if err := logger.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("log older than MaxLogAge should be removed")
	}
	if _, err := os.Stat(logger.LogPath()); err != nil {
		t.Error("current log must never be removed")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %v, want %v", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"", LevelInfo},
		{"loud", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Level != LevelInfo {
		t.Errorf("DefaultConfig().Level = %v, want %v", config.Level, LevelInfo)
	}
	if config.LogDir != ".nestlist/logs" {
		t.Errorf("DefaultConfig().LogDir = %v, want %v", config.LogDir, ".nestlist/logs")
	}
	if config.MaxLogFiles != 10 {
		t.Errorf("DefaultConfig().MaxLogFiles = %v, want %v", config.MaxLogFiles, 10)
	}
	if config.MaxLogAge != 7*24*time.Hour {
		t.Errorf("DefaultConfig().MaxLogAge = %v, want %v", config.MaxLogAge, 7*24*time.Hour)
	}
	if config.Console {
		t.Error("DefaultConfig().Console should be false")
	}
}

func TestConsoleOutput(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo, Console: true})
	logger.Info("console test")

	if !strings.Contains(readLog(t, logger), "console test") {
		t.Error("file output should still be written with Console enabled")
	}
}
