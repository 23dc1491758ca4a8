package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config root configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage" json:"storage"`
	Log     LogConfig     `mapstructure:"log" json:"log"`
	Audit   AuditConfig   `mapstructure:"audit" json:"audit"`
	UI      UIConfig      `mapstructure:"ui" json:"ui"`
}

// StorageConfig durable storage settings
type StorageConfig struct {
	Backend string `mapstructure:"backend" json:"backend"` // file | sqlite | memory | none
	DataDir string `mapstructure:"data_dir" json:"data_dir"`
}

// LogConfig application logging settings
type LogConfig struct {
	Level string `mapstructure:"level" json:"level"`
	File  string `mapstructure:"file" json:"file"`
}

// AuditConfig approval audit trail settings
type AuditConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"`
}

// UIConfig terminal UI settings
type UIConfig struct {
	AltScreen   bool `mapstructure:"alt_screen" json:"alt_screen"`
	ConfirmBulk bool `mapstructure:"confirm_bulk" json:"confirm_bulk"`
}

// DefaultConfig returns config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			DataDir: filepath.Join(ConfigDir(), "data"),
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
		Audit: AuditConfig{
			Enabled: true,
		},
		UI: UIConfig{
			AltScreen:   true,
			ConfirmBulk: true,
		},
	}
}

// ConfigDir returns the approvalcenter config directory
func ConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		slog.Warn("failed to resolve home directory, using current directory as fallback", "error", err)
		homeDir = "."
	}
	return filepath.Join(homeDir, ".approvalcenter")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// Load loads config from file or returns defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := ConfigPath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(cfg); err != nil {
			return cfg, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	v.SetEnvPrefix("APPROVALCENTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}

	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.MatchName = func(mapKey, fieldName string) bool {
			return normalizeKey(mapKey) == normalizeKey(fieldName)
		}
	}); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func normalizeKey(input string) string {
	input = strings.ReplaceAll(input, "_", "")
	input = strings.ReplaceAll(input, "-", "")
	return strings.ToLower(input)
}

// Save saves config to file
func Save(cfg *Config) error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// Validate checks that the configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	backend := strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if backend == "" {
		backend = "file"
	}
	validBackends := map[string]bool{"file": true, "sqlite": true, "memory": true, "none": true}
	if !validBackends[backend] {
		return fmt.Errorf("storage.backend must be one of file, sqlite, memory, none; got %q", c.Storage.Backend)
	}
	c.Storage.Backend = backend

	if strings.TrimSpace(c.Storage.DataDir) == "" {
		c.Storage.DataDir = filepath.Join(ConfigDir(), "data")
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level == "" {
		c.Log.Level = "info"
	} else {
		validLevels := map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		}
		if !validLevels[level] {
			return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
		}
		c.Log.Level = level
	}

	return nil
}

// DataPath returns the expanded data directory.
func (c *Config) DataPath() string {
	path, err := c.DataPathChecked()
	if err != nil {
		return filepath.Join(ConfigDir(), "data")
	}
	return path
}

// DataPathChecked returns the expanded data directory or an error if it
// cannot be resolved.
func (c *Config) DataPathChecked() (string, error) {
	dir := strings.TrimSpace(c.Storage.DataDir)
	if dir == "" {
		return filepath.Join(ConfigDir(), "data"), nil
	}
	if dir[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory for data path: %w", err)
		}
		rest := dir[1:]
		rest = strings.TrimPrefix(rest, string(filepath.Separator))
		rest = strings.TrimPrefix(rest, "/")
		return filepath.Join(homeDir, rest), nil
	}
	return dir, nil
}
