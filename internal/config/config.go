// Package config loads miso's optional YAML configuration and resolves
// the directories the tool writes to.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AppName names the per-user directories miso uses.
const AppName = "miso"

// Config holds persistent settings loaded from <user-config-dir>/miso/config.yaml.
type Config struct {
	DataDir             string `yaml:"data_dir"`
	LogLevel            string `yaml:"log_level"`
	Audit               *bool  `yaml:"audit"`
	ClipboardClearAfter string `yaml:"clipboard_clear_after"`
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// Load reads a YAML config file from path. If the file does not exist,
// it returns an empty Config and no error. An empty or all-comment file
// also returns an empty Config with no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that have a fixed format.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.ClearAfter(); err != nil {
		return err
	}
	return nil
}

// AuditEnabled reports whether backend accesses are audited. Auditing is
// on unless the config turns it off explicitly.
func (c *Config) AuditEnabled() bool {
	return c.Audit == nil || *c.Audit
}

// Level parses log_level. Empty means warn.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
}

// ClearAfter parses clipboard_clear_after. Zero means never clear.
func (c *Config) ClearAfter() (time.Duration, error) {
	if c.ClipboardClearAfter == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ClipboardClearAfter)
	if err != nil {
		return 0, fmt.Errorf("invalid clipboard_clear_after: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid clipboard_clear_after %q: must not be negative", c.ClipboardClearAfter)
	}
	return d, nil
}

// ResolveDataDir returns the directory holding the label index and audit
// log: data_dir if set, otherwise <local-data-dir>/miso.
func (c *Config) ResolveDataDir() string {
	if c.DataDir != "" {
		return expandHome(c.DataDir)
	}
	return filepath.Join(LocalDataDir(), AppName)
}

// LocalDataDir returns the platform's per-user local data directory, or
// "." when none can be determined.
func LocalDataDir() string {
	home, _ := os.UserHomeDir()
	return localDataDir(runtime.GOOS, os.Getenv, home)
}

func localDataDir(goos string, getenv func(string) string, home string) string {
	switch goos {
	case "windows":
		if dir := getenv("LOCALAPPDATA"); dir != "" {
			return dir
		}
	case "darwin", "ios":
		if home != "" {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "plan9":
		if home != "" {
			return filepath.Join(home, "lib")
		}
	default:
		if dir := getenv("XDG_DATA_HOME"); filepath.IsAbs(dir) {
			return dir
		}
		if home != "" {
			return filepath.Join(home, ".local", "share")
		}
	}
	return "."
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
