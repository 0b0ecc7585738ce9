package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	LogLevel      string `toml:"log_level"`
	Tray          bool   `toml:"tray"`           // Show a tray icon with toggle/quit items
	RestoreOnExit bool   `toml:"restore_on_exit"` // Show the taskbar again when the loop ends
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		Tray:          false,
		RestoreOnExit: false,
	}
}

// Load reads the config from disk or returns defaults
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path. A missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Path returns the platform-specific config file path
func Path() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "taskbar-toggle", "config.toml")
}
