// internal/config/config.go
//
// This package handles configuration and the data directory structure.
// Fairway keeps everything under one directory, ~/.fairway by default:
//
// .fairway/
// ├── config.yaml   <- course layout, storage and display preferences
// ├── data/         <- round history (rounds.json or fairway.db)
// └── logs/         <- fairway.log

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/fairway/internal/course"
	"github.com/kingrea/fairway/internal/insights"
)

const (
	// DataDirName is the directory created in the user's home directory.
	DataDirName = ".fairway"

	DriverFile   = "file"
	DriverSQLite = "sqlite"

	// DefaultDateFormat renders dates like an en-US locale date (10/15/2026).
	DefaultDateFormat = "1/2/2006"

	defaultLogLevel = "info"
)

const defaultConfigYAML = `# fairway configuration
version: 1

# Course layout used for new rounds: 18 holes numbered 1..18.
# Leave holes empty to use the built-in par 72 layout.
course:
  name: ""
  holes: []

# Round history storage. driver: file keeps data/rounds.json,
# driver: sqlite keeps data/fairway.db. Relative paths resolve against this directory.
storage:
  driver: file
  path: data

# auto compares against your history when there is one, otherwise applies
# fixed thresholds. Other values: threshold, comparative.
insights:
  mode: auto

display:
  # Go time layout used to stamp finished rounds.
  date_format: "1/2/2006"

logging:
  level: info
`

// StorageConfig selects the round store backend.
type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// InsightsConfig selects the insight policy.
type InsightsConfig struct {
	Mode string `yaml:"mode"`
}

// DisplayConfig captures presentation preferences.
type DisplayConfig struct {
	DateFormat string `yaml:"date_format"`
}

// LoggingConfig captures log preferences.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FileConfig models config.yaml.
type FileConfig struct {
	Version  int            `yaml:"version"`
	Course   course.Course  `yaml:"course"`
	Storage  StorageConfig  `yaml:"storage"`
	Insights InsightsConfig `yaml:"insights"`
	Display  DisplayConfig  `yaml:"display"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Config holds the runtime configuration for Fairway.
type Config struct {
	// DataDir is the directory holding config.yaml, data/ and logs/
	DataDir string

	File FileConfig
}

// DefaultDataDir returns ~/.fairway.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: locate home directory: %w", err)
	}
	return filepath.Join(home, DataDirName), nil
}

// InitDataDir creates the directory structure and a default config.yaml.
func InitDataDir(dataDir string) error {
	dirs := []string{
		dataDir,
		filepath.Join(dataDir, "data"),
		filepath.Join(dataDir, "logs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensureConfigFile(filepath.Join(dataDir, "config.yaml"))
}

// NewConfig loads config.yaml from dataDir, falling back to defaults when the
// file does not exist.
func NewConfig(dataDir string) (*Config, error) {
	cfg := &Config{
		DataDir: dataDir,
		File:    defaultFileConfig(),
	}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath returns the on-disk location of config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.DataDir, "config.yaml")
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// Course returns the layout new rounds are seeded from.
func (c *Config) Course() course.Course {
	return c.File.Course
}

// StorageDriver returns "file" or "sqlite".
func (c *Config) StorageDriver() string {
	return c.File.Storage.Driver
}

// StoragePath returns the absolute storage directory.
func (c *Config) StoragePath() string {
	return c.File.Storage.Path
}

// InsightsMode returns the validated insight policy.
func (c *Config) InsightsMode() insights.Mode {
	mode, err := insights.ParseMode(c.File.Insights.Mode)
	if err != nil {
		return insights.ModeAuto
	}
	return mode
}

// DateFormat returns the Go layout used to stamp finished rounds.
func (c *Config) DateFormat() string {
	return c.File.Display.DateFormat
}

// FormatDate renders t with the configured layout.
func (c *Config) FormatDate(t time.Time) string {
	return t.Format(c.DateFormat())
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() string {
	return c.File.Logging.Level
}

func (c *Config) load() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.File.normalize(c.DataDir)
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.DataDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.File = parsed
	return nil
}

func defaultFileConfig() FileConfig {
	fc := FileConfig{}
	fc.applyDefaults()
	return fc
}

func (fc *FileConfig) applyDefaults() {
	if fc.Version == 0 {
		fc.Version = 1
	}
	if len(fc.Course.Holes) == 0 {
		name := fc.Course.Name
		fc.Course = course.Default()
		if strings.TrimSpace(name) != "" {
			fc.Course.Name = name
		}
	}
	if strings.TrimSpace(fc.Storage.Driver) == "" {
		fc.Storage.Driver = DriverFile
	}
	if strings.TrimSpace(fc.Storage.Path) == "" {
		fc.Storage.Path = "data"
	}
	if strings.TrimSpace(fc.Insights.Mode) == "" {
		fc.Insights.Mode = string(insights.ModeAuto)
	}
	if strings.TrimSpace(fc.Display.DateFormat) == "" {
		fc.Display.DateFormat = DefaultDateFormat
	}
	if strings.TrimSpace(fc.Logging.Level) == "" {
		fc.Logging.Level = defaultLogLevel
	}
}

func (fc *FileConfig) normalize(base string) {
	fc.Course.Name = strings.TrimSpace(fc.Course.Name)
	fc.Storage.Driver = normalizeEnum(fc.Storage.Driver)
	fc.Storage.Path = resolvePath(base, fc.Storage.Path)
	fc.Insights.Mode = normalizeEnum(fc.Insights.Mode)
	fc.Logging.Level = normalizeEnum(fc.Logging.Level)
}

func (fc *FileConfig) validate() error {
	if fc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if err := fc.Course.Validate(); err != nil {
		return fmt.Errorf("course: %w", err)
	}
	switch fc.Storage.Driver {
	case DriverFile, DriverSQLite:
	default:
		return fmt.Errorf("storage.driver must be 'file' or 'sqlite'")
	}
	if _, err := insights.ParseMode(fc.Insights.Mode); err != nil {
		return fmt.Errorf("insights.mode: %w", err)
	}
	return nil
}

func normalizeEnum(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
