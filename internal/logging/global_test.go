package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetGlobal(t *testing.T) {
	t.Helper()
	SetGlobal(nil)
	t.Cleanup(func() { _ = CloseGlobal() })
}

func globalLogContent(t *testing.T, dir string) string {
	t.Helper()
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "nestlist_") {
			content, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				t.Fatalf("Failed to read log file: %v", err)
			}
			return string(content)
		}
	}
	t.Fatal("No log file found")
	return ""
}

func TestGlobal(t *testing.T) {
	resetGlobal(t)

	logger := Global()
	if logger == nil {
		t.Fatal("Global() returned nil")
	}
	if logger != noopLogger {
		t.Error("Global() should return the no-op logger before initialization")
	}
	logger.Info("test message")
}

func TestSetGlobal(t *testing.T) {
	resetGlobal(t)

	logger := newTestLogger(t, &Config{Level: LevelInfo})
	SetGlobal(logger)

	if Global() != logger {
		t.Error("Global() should return the logger set by SetGlobal()")
	}

	SetGlobal(nil)
	if Global() != noopLogger {
		t.Error("SetGlobal(nil) should restore the no-op logger")
	}
}

func TestInitGlobal(t *testing.T) {
	resetGlobal(t)
	tmpDir := t.TempDir()

	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: tmpDir}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	Global().Info("test message")

	if !strings.Contains(globalLogContent(t, tmpDir), "test message") {
		t.Error("global log should contain the message")
	}
}

func TestCloseGlobal(t *testing.T) {
	resetGlobal(t)

	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: t.TempDir()}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}
	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}
	if Global() != noopLogger {
		t.Error("Global() should fall back to the no-op logger after CloseGlobal()")
	}
	if err := CloseGlobal(); err != nil {
		t.Errorf("second CloseGlobal() should not error: %v", err)
	}
}

func TestGlobalConvenienceFunctions(t *testing.T) {
	resetGlobal(t)
	tmpDir := t.TempDir()

	if err := InitGlobal(&Config{Level: LevelDebug, LogDir: tmpDir}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
	With("component", "nav").Info("with test")

	content := globalLogContent(t, tmpDir)
	for _, msg := range []string{"debug message", "info message", "warn message", "error message", "component=nav"} {
		if !strings.Contains(content, msg) {
			t.Errorf("Log should contain %q", msg)
		}
	}
}
