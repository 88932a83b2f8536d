package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	c, err := NewConfig(home)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Settings.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Settings.Version)
	}
	if c.StorageBackend() != "file" {
		t.Fatalf("expected file backend, got %q", c.StorageBackend())
	}
	if c.StorageKey() != "regulatorySubmission" {
		t.Fatalf("expected default key, got %q", c.StorageKey())
	}
	if c.DestinationURL() != DefaultDestinationURL {
		t.Fatalf("unexpected destination %q", c.DestinationURL())
	}
}

func TestInitHomeDirWritesParsableDefaults(t *testing.T) {
	home := t.TempDir()
	if err := InitHomeDir(home); err != nil {
		t.Fatalf("init home: %v", err)
	}
	for _, dir := range []string{"state", "logs"} {
		if info, err := os.Stat(filepath.Join(home, dir)); err != nil || !info.IsDir() {
			t.Fatalf("expected %s directory: %v", dir, err)
		}
	}
	c, err := NewConfig(home)
	if err != nil {
		t.Fatalf("default config.yaml should parse: %v", err)
	}
	if c.LogLevel() != "info" {
		t.Fatalf("log level = %q", c.LogLevel())
	}
}

func TestInitHomeDirKeepsExistingConfig(t *testing.T) {
	home := t.TempDir()
	custom := "version: 1\nstorage:\n  backend: sqlite\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitHomeDir(home); err != nil {
		t.Fatalf("init home: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != custom {
		t.Fatalf("existing config overwritten:\n%s", data)
	}
}

func TestNewConfigParsesYaml(t *testing.T) {
	home := t.TempDir()
	configYAML := strings.TrimSpace(`
version: 1
storage:
  backend: " SQLite "
  key: mySubmission
destination_url: https://example.org/submit
logging:
  level: DEBUG
`)
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(home)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.StorageBackend() != "sqlite" {
		t.Fatalf("backend = %q", c.StorageBackend())
	}
	if c.StorageKey() != "mySubmission" {
		t.Fatalf("key = %q", c.StorageKey())
	}
	if c.DestinationURL() != "https://example.org/submit" {
		t.Fatalf("destination = %q", c.DestinationURL())
	}
	if c.LogLevel() != "debug" {
		t.Fatalf("level = %q", c.LogLevel())
	}
}

func TestNewConfigValidation(t *testing.T) {
	cases := map[string]string{
		"backend": "version: 1\nstorage:\n  backend: redis\n",
		"key":     "version: 1\nstorage:\n  key: ../outside\n",
		"level":   "version: 1\nlogging:\n  level: chatty\n",
		"yaml":    "version: [1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			home := t.TempDir()
			if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := NewConfig(home); err == nil {
				t.Fatalf("expected validation error but got none")
			}
		})
	}
}

func TestResolveHome(t *testing.T) {
	flagDir := t.TempDir()
	got, err := ResolveHome(flagDir)
	if err != nil || got != flagDir {
		t.Fatalf("flag value: got %q, %v", got, err)
	}
	envDir := t.TempDir()
	t.Setenv(HomeEnv, envDir)
	got, err = ResolveHome("")
	if err != nil || got != envDir {
		t.Fatalf("env value: got %q, %v", got, err)
	}
}
