package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "wealthplan"

// AppConfig holds application preferences, separate from plan settings.
type AppConfig struct {
	Output OutputConfig `toml:"output"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// OutputConfig holds report preferences.
type OutputConfig struct {
	DefaultFormat  string `toml:"default_format"`
	Directory      string `toml:"directory"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// StoreConfig locates the settings/result store.
type StoreConfig struct {
	Path string `toml:"path,omitempty"`
}

// ServerConfig holds API server settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultAppConfig returns the default application configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Output: OutputConfig{
			DefaultFormat:  "console",
			Directory:      ".",
			CurrencySymbol: "₹",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultStorePath returns the store location used when none is configured.
func DefaultStorePath() string {
	return filepath.Join(ConfigDir(), "wealthplan.db")
}

// StorePath resolves the configured store path.
func (c AppConfig) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return DefaultStorePath()
}

// LoadAppConfig reads the config file at path, or ConfigPath when path is empty.
// A missing file yields defaults.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveAppConfig writes cfg to path, or ConfigPath when path is empty.
func SaveAppConfig(path string, cfg AppConfig) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// AppConfigExists returns true if a config file exists at path (or ConfigPath).
func AppConfigExists(path string) bool {
	if path == "" {
		path = ConfigPath()
	}
	_, err := os.Stat(path)
	return err == nil
}
