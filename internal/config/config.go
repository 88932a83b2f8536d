// internal/config/config.go
//
// This package handles configuration and the submission home directory.
// Every user gets one home holding the saved draft, the log file and a
// config.yaml with storage and display preferences.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppDirName is the directory created under the user config dir.
	AppDirName = "submission-builder"

	// HomeEnv overrides the home directory when set.
	HomeEnv = "SUBMISSION_HOME"

	// DefaultDestinationURL is the consultation page the document is pasted into.
	DefaultDestinationURL = "https://www.parliament.nz/en/pb/sc/make-a-submission/"

	defaultStorageBackend = "file"
	defaultStorageKey     = "regulatorySubmission"
	defaultLogLevel       = "info"
)

const defaultSettingsYAML = `# submission builder configuration
version: 1

# Where the in-progress draft is kept.
# backend: file stores state/<key>.json, sqlite stores state/drafts.db
storage:
  backend: file
  key: regulatorySubmission

# The consultation form the finished document is pasted into.
destination_url: https://www.parliament.nz/en/pb/sc/make-a-submission/

logging:
  level: info
`

// StorageConfig selects the persistence slot.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Key     string `yaml:"key"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Settings models config.yaml.
type Settings struct {
	Version        int           `yaml:"version"`
	Storage        StorageConfig `yaml:"storage"`
	DestinationURL string        `yaml:"destination_url"`
	Logging        LoggingConfig `yaml:"logging"`
}

// Config holds the runtime configuration.
type Config struct {
	// HomeDir holds state/, logs/ and config.yaml
	HomeDir string

	Settings Settings
}

// ResolveHome picks the home directory: an explicit flag value, then
// $SUBMISSION_HOME, then the OS user config directory.
func ResolveHome(flagValue string) (string, error) {
	if dir := strings.TrimSpace(flagValue); dir != "" {
		return filepath.Abs(dir)
	}
	if dir := strings.TrimSpace(os.Getenv(HomeEnv)); dir != "" {
		return filepath.Abs(dir)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate user config dir: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// InitHomeDir creates the home directory structure.
//
// Structure created:
// <home>/
// ├── config.yaml
// ├── state/   <- saved draft (file or sqlite backend)
// └── logs/    <- submission.log
func InitHomeDir(homeDir string) error {
	dirs := []string{
		filepath.Join(homeDir, "state"),
		filepath.Join(homeDir, "logs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	return ensureSettingsFile(filepath.Join(homeDir, "config.yaml"))
}

// NewConfig loads config.yaml from homeDir, falling back to defaults when the
// file does not exist.
func NewConfig(homeDir string) (*Config, error) {
	cfg := &Config{
		HomeDir:  homeDir,
		Settings: defaultSettings(),
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StateDir returns the directory holding the saved draft.
func (c *Config) StateDir() string {
	return filepath.Join(c.HomeDir, "state")
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.HomeDir, "logs")
}

// SettingsPath returns the on-disk location of config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.HomeDir, "config.yaml")
}

// StorageBackend returns the configured slot backend.
func (c *Config) StorageBackend() string {
	return c.Settings.Storage.Backend
}

// StorageKey returns the slot key the draft is stored under.
func (c *Config) StorageKey() string {
	return c.Settings.Storage.Key
}

// DestinationURL returns the consultation form link.
func (c *Config) DestinationURL() string {
	return c.Settings.DestinationURL
}

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string {
	return c.Settings.Logging.Level
}

func (c *Config) loadSettings() error {
	path := c.SettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Settings = parsed
	return nil
}

func defaultSettings() Settings {
	return Settings{
		Version: 1,
		Storage: StorageConfig{
			Backend: defaultStorageBackend,
			Key:     defaultStorageKey,
		},
		DestinationURL: DefaultDestinationURL,
		Logging:        LoggingConfig{Level: defaultLogLevel},
	}
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if strings.TrimSpace(s.Storage.Backend) == "" {
		s.Storage.Backend = defaultStorageBackend
	}
	if strings.TrimSpace(s.Storage.Key) == "" {
		s.Storage.Key = defaultStorageKey
	}
	if strings.TrimSpace(s.DestinationURL) == "" {
		s.DestinationURL = DefaultDestinationURL
	}
	if strings.TrimSpace(s.Logging.Level) == "" {
		s.Logging.Level = defaultLogLevel
	}
}

func (s *Settings) normalize() {
	s.Storage.Backend = strings.ToLower(strings.TrimSpace(s.Storage.Backend))
	s.Storage.Key = strings.TrimSpace(s.Storage.Key)
	s.DestinationURL = strings.TrimSpace(s.DestinationURL)
	s.Logging.Level = strings.ToLower(strings.TrimSpace(s.Logging.Level))
}

func (s *Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	switch s.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("storage.backend must be 'file' or 'sqlite'")
	}
	if strings.ContainsAny(s.Storage.Key, `/\`) {
		return fmt.Errorf("storage.key must not contain path separators")
	}
	switch s.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

func ensureSettingsFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultSettingsYAML), 0o644)
}
