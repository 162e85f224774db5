// Package config loads menuload settings from defaults, a .env file,
// MENULOAD_* environment variables, an optional config file and CLI flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/olkkari/menuload/pkg/menuload"
	"github.com/olkkari/menuload/pkg/menuload/remote"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "MENULOAD"

	// DefaultSupabaseURL is the production project.
	DefaultSupabaseURL = "https://nudtmksamwwmzrbgstlm.supabase.co"
	// DefaultSupabaseKey is the project's publishable (anon) key.
	DefaultSupabaseKey = "sb_publishable_6wPpjqpX9ss8IAidXWqh1Q_PA4TZ7XF" //nolint:gosec
)

// ErrMissingKey is returned when the hosted API is selected without a key.
var ErrMissingKey = errors.New("supabase access key is not set")

// Config holds all settings.
type Config struct {
	Workbook     string `mapstructure:"workbook"`
	MenuJSON     string `mapstructure:"menu_json"`
	CocktailJSON string `mapstructure:"cocktail_json"`

	Backend       string `mapstructure:"backend"`
	SupabaseURL   string `mapstructure:"supabase_url"`
	SupabaseKey   string `mapstructure:"supabase_key"`
	DatabaseURL   string `mapstructure:"database_url"`
	SQLitePath    string `mapstructure:"sqlite_path"`
	SQLiteMigrate bool   `mapstructure:"sqlite_migrate"`

	LogLevel string `mapstructure:"log_level"`
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"workbook":       "workbook",
	"menu-json":      "menu_json",
	"cocktail-json":  "cocktail_json",
	"backend":        "backend",
	"supabase-url":   "supabase_url",
	"supabase-key":   "supabase_key",
	"database-url":   "database_url",
	"sqlite-path":    "sqlite_path",
	"sqlite-migrate": "sqlite_migrate",
	"log-level":      "log_level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workbook", menuload.DefaultWorkbook)
	v.SetDefault("menu_json", menuload.DefaultMenuOutput)
	v.SetDefault("cocktail_json", menuload.DefaultCocktailOutput)
	v.SetDefault("backend", remote.KindPostgREST)
	v.SetDefault("supabase_url", DefaultSupabaseURL)
	v.SetDefault("supabase_key", DefaultSupabaseKey)
	v.SetDefault("database_url", "")
	v.SetDefault("sqlite_path", "menu.db")
	v.SetDefault("sqlite_migrate", false)
	v.SetDefault("log_level", "info")
}

// Load builds the configuration. configFile may be empty; flags may be nil.
// Only flags that were set on the command line override other sources.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate checks settings needed by the load stage.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", remote.KindPostgREST:
		if c.SupabaseKey == "" {
			return ErrMissingKey
		}
	}
	return nil
}

// RemoteSettings returns the backend selection for remote.Open.
func (c *Config) RemoteSettings() remote.Settings {
	return remote.Settings{
		Kind:       c.Backend,
		URL:        c.SupabaseURL,
		Key:        c.SupabaseKey,
		DSN:        c.DatabaseURL,
		SQLitePath: c.SQLitePath,
		Migrate:    c.SQLiteMigrate,
	}
}

// ExtractOptions returns the sheets to extract with the configured outputs.
func (c *Config) ExtractOptions() menuload.Options {
	return menuload.NewOptions(c.MenuJSON, c.CocktailJSON)
}
