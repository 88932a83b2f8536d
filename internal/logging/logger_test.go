package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesToLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := New(dir, "info")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("draft restored", zap.String("key", "regulatorySubmission"))
	logger.Debug("hidden at info level")
	if err := logger.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "draft restored") || !strings.Contains(text, "regulatorySubmission") {
		t.Fatalf("log missing entry:\n%s", text)
	}
	if strings.Contains(text, "hidden at info level") {
		t.Fatalf("debug entry logged at info level:\n%s", text)
	}
}

func TestNewAppendsUnderAwkwardDirName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my logs #1", "100% [draft]")
	for _, msg := range []string{"first run", "second run"} {
		logger, err := New(dir, "info")
		if err != nil {
			t.Fatalf("new logger: %v", err)
		}
		logger.Info(msg)
		if err := logger.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 appended lines, got %d:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[0], "first run") || !strings.Contains(lines[1], "second run") {
		t.Fatalf("entries out of order:\n%s", data)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"DEBUG": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
