package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_ConsoleOnly(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	var buf bytes.Buffer
	if err := Init(Options{Level: "info", Console: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if Enabled() {
		t.Error("Enabled() should return false without Debug")
	}

	l := Logger()
	l.Info().Msg("visible message")
	l.Debug().Msg("hidden message")

	out := buf.String()
	if !strings.Contains(out, "visible message") {
		t.Errorf("console output missing info record: %q", out)
	}
	if strings.Contains(out, "hidden message") {
		t.Errorf("console output should drop debug records at info level: %q", out)
	}
}

func TestInit_Enabled(t *testing.T) {
	resetForTest()

	tmpDir := t.TempDir()
	origGetLogPath := getLogPath
	getLogPath = func() (string, error) {
		return filepath.Join(tmpDir, LogDirName, LogFileName), nil
	}
	t.Cleanup(func() {
		getLogPath = origGetLogPath
		Close()
		resetForTest()
	})

	var buf bytes.Buffer
	if err := Init(Options{Debug: true, Level: "warn", Console: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if !Enabled() {
		t.Error("Enabled() should return true with Debug")
	}

	Logf("test %s %d", "formatted", 42)
	c := Component("build")
	c.Warn().Msg("component warning")
	Close()

	content, err := os.ReadFile(filepath.Join(tmpDir, LogDirName, LogFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "debug log started") {
		t.Error("Log file should contain startup message")
	}
	if !strings.Contains(contentStr, "test formatted 42") {
		t.Error("Log file should contain 'test formatted 42'")
	}
	if !strings.Contains(contentStr, `"component":"build"`) {
		t.Error("Log file should carry the component field")
	}

	console := buf.String()
	if strings.Contains(console, "test formatted 42") {
		t.Error("console should not receive debug records at warn level")
	}
	if !strings.Contains(console, "component warning") {
		t.Error("console should receive warnings")
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	if err := Init(Options{Level: "loud", Console: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestParseLevelAliases(t *testing.T) {
	for _, name := range []string{"", "INFO", " warning ", "debug", "error"} {
		if _, err := parseLevel(name); err != nil {
			t.Errorf("parseLevel(%q) failed: %v", name, err)
		}
	}
}

func TestClose(t *testing.T) {
	resetForTest()

	tmpDir := t.TempDir()
	origGetLogPath := getLogPath
	getLogPath = func() (string, error) {
		return filepath.Join(tmpDir, LogDirName, LogFileName), nil
	}
	t.Cleanup(func() {
		getLogPath = origGetLogPath
		resetForTest()
	})

	if err := Init(Options{Debug: true, Console: &bytes.Buffer{}}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	// Multiple closes should be safe
	Close()
	Close()
	Close()
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("a regular file is not a terminal")
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()
	if isTerminal(w) {
		t.Error("a pipe is not a terminal")
	}
}

func TestGetLogPath(t *testing.T) {
	path, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath() failed: %v", err)
	}

	if !strings.HasSuffix(path, filepath.Join(LogDirName, LogFileName)) {
		t.Errorf("GetLogPath() = %q, want suffix %q", path, filepath.Join(LogDirName, LogFileName))
	}
}

func TestLogf_WhenUninitialized(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	// Nop logger: must not panic
	Logf("test %d %s", 123, "fmt")
	c := Component("x")
	c.Info().Msg("ignored")
}

// resetForTest resets the package state for testing.
func resetForTest() {
	Close()
	mu.Lock()
	defer mu.Unlock()
	enabled = false
	logger = zerolog.Nop()
}
