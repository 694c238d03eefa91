package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitWritesDebugFile(t *testing.T) {
	dir := t.TempDir()
	if err := Init(Options{DebugDir: dir, Stderr: &bytes.Buffer{}}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer Close()

	Debug("built server command", "env", []string{"SEARXNG_URL"})
	Close()

	content, err := os.ReadFile(filepath.Join(dir, fileName(time.Now().Format(dayLayout))))
	if err != nil {
		t.Fatalf("reading debug file: %v", err)
	}
	if !strings.Contains(string(content), "built server command") {
		t.Errorf("debug file missing record, got: %s", content)
	}
	if !strings.Contains(string(content), `"level":"DEBUG"`) {
		t.Errorf("debug file should record debug level as JSON, got: %s", content)
	}
}

func TestInitStderrLevels(t *testing.T) {
	var stderr bytes.Buffer
	if err := Init(Options{Stderr: &stderr}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	out := stderr.String()
	for _, hidden := range []string{"debug message", "info message"} {
		if strings.Contains(out, hidden) {
			t.Errorf("%q should not reach stderr without --verbose", hidden)
		}
	}
	for _, shown := range []string{"warn message", "error message"} {
		if !strings.Contains(out, shown) {
			t.Errorf("%q should reach stderr", shown)
		}
	}
}

func TestInitVerbose(t *testing.T) {
	var stderr bytes.Buffer
	if err := Init(Options{Verbose: true, Stderr: &stderr}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Debug("debug message")
	Info("info message")

	out := stderr.String()
	if !strings.Contains(out, "debug message") || !strings.Contains(out, "info message") {
		t.Errorf("verbose stderr should include debug and info, got: %s", out)
	}
}

func TestInitJSONFormat(t *testing.T) {
	var stderr bytes.Buffer
	if err := Init(Options{JSONFormat: true, Stderr: &stderr}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Warn("proxy ignored", "field", "no_proxy")

	out := stderr.String()
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"field":"no_proxy"`) {
		t.Errorf("expected JSON record, got: %s", out)
	}
}

func TestSetCommand(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetCommand("validate")

	Info("checking settings")

	if !strings.Contains(buf.String(), "command=validate") {
		t.Errorf("expected command attribute, got: %s", buf.String())
	}
}
