package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Panel PanelConfig
	Store StoreConfig
}

// PanelConfig holds the coordinator settings.
type PanelConfig struct {
	DefaultOpen bool   `mapstructure:"default_open"`
	Side        string `mapstructure:"side"`
	Collapsible string `mapstructure:"collapsible"`
	Breakpoint  int    `mapstructure:"breakpoint"`
}

// StoreConfig selects and configures the preference backend.
type StoreConfig struct {
	Backend  string `mapstructure:"backend"` // file, sqlite, redis or none
	Path     string `mapstructure:"path"`    // sqlite database path
	RedisURL string `mapstructure:"redis_url"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix SIDEBAR_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("panel.default_open", true)
	v.SetDefault("panel.side", "start")
	v.SetDefault("panel.collapsible", "icon-only")
	v.SetDefault("panel.breakpoint", 100)
	v.SetDefault("store.backend", "file")
	v.SetDefault("store.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "sidebar", "prefs.db"))
	v.SetDefault("store.redis_url", "redis://localhost:6379/0")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SIDEBAR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sidebar"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SIDEBAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
