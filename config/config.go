package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the ambient settings. The shortcut and the injected
// character are fixed at build time and deliberately not configurable.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Inject InjectConfig `toml:"inject"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type InjectConfig struct {
	// SettleMS is how long to wait after posting the paste before the
	// clipboard is restored. Slow targets may need more.
	SettleMS int `toml:"settle_ms"`
}

// Default configuration
func defaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
		Inject: InjectConfig{
			SettleMS: 16,
		},
	}
}

// SlogLevel maps the configured level name onto slog's levels. Unknown
// names fall back to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Settle returns the configured paste settle interval.
func (i InjectConfig) Settle() time.Duration {
	return time.Duration(i.SettleMS) * time.Millisecond
}

// ConfigPath returns the path to the configuration file
func ConfigPath() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		appData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
	}

	configDir := filepath.Join(appData, "hardspace")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from the TOML file
// If the file doesn't exist, it creates it with default values
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// If config doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := defaultConfig()
		if err := save(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	// Load existing config
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// save writes the configuration to the TOML file
func save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}
