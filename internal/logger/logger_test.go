package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, p string) string {
	t.Helper()
	content, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_WritesHeader(t *testing.T) {
	p := setupTestLogger(t)

	if Path() != p {
		t.Errorf("Path() = %q, want %q", Path(), p)
	}
	if !strings.Contains(readLog(t, p), "Logger initialized") {
		t.Error("log should record initialization")
	}
}

func TestInit_Twice(t *testing.T) {
	p := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if Path() != p {
		t.Errorf("second Init should be a no-op, path = %q", Path())
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	if err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("Init should fail for a path whose directory does not exist")
	}
}

func TestLevels(t *testing.T) {
	p := setupTestLogger(t)

	Debug("hidden-debug-%d", 1)
	Info("visible-info-%d", 2)
	Warn("visible-warn")
	Error("visible-error")

	content := readLog(t, p)
	if strings.Contains(content, "hidden-debug-1") {
		t.Error("debug message should be filtered at info level")
	}
	for _, want := range []string{"visible-info-2", "visible-warn", "visible-error"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q", want)
		}
	}

	SetDebug(true)
	Debug("now-visible-debug")
	if !strings.Contains(readLog(t, p), "now-visible-debug") {
		t.Error("debug message should be written after SetDebug(true)")
	}
}

func TestWithComponent(t *testing.T) {
	p := setupTestLogger(t)

	log := WithComponent("execution")
	log.Info("run finished", "requestID", 7)

	content := readLog(t, p)
	if !strings.Contains(content, "component=execution") {
		t.Errorf("expected component attribute, got:\n%s", content)
	}
	if !strings.Contains(content, "requestID=7") {
		t.Errorf("expected requestID attribute, got:\n%s", content)
	}
}

func TestClose(t *testing.T) {
	setupTestLogger(t)
	Close()
	Close()
}

func TestClearLogs(t *testing.T) {
	p := filepath.Join(t.TempDir(), "codepad.log")
	if err := os.WriteFile(p, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := ClearLogs(p)
	if err != nil || n != 1 {
		t.Fatalf("ClearLogs() = (%d, %v), want (1, nil)", n, err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Error("log file should be gone")
	}

	n, err = ClearLogs(p)
	if err != nil || n != 0 {
		t.Errorf("ClearLogs() on a missing file = (%d, %v), want (0, nil)", n, err)
	}
}
