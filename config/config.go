// Package config holds the settings of every eduhub command. Values come from
// defaults, an optional YAML file and EDUHUB_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. EDUHUB_SERVER_ADDRESS.
const EnvPrefix = "EDUHUB"

// DevTokenSecret signs view tokens when no secret is configured.
// Set views.token_secret in production.
const DevTokenSecret = "development-only-view-secret-change-me"

// Config is the full settings tree
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Views   ViewsConfig   `mapstructure:"views"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Address string `mapstructure:"address"`
	Verbose bool   `mapstructure:"verbose"`
	// MountsPerMinute limits page loads per client. Zero turns the limit off.
	MountsPerMinute int `mapstructure:"mounts_per_minute"`
}

// CatalogConfig locates the course store
type CatalogConfig struct {
	// DBPath is the DuckDB file. Empty keeps the catalog in memory only.
	DBPath string `mapstructure:"db_path"`
	// Seed loads the embedded catalog into an empty store on start-up.
	Seed bool `mapstructure:"seed"`
}

// ViewsConfig controls mounted filter bar views
type ViewsConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	TokenSecret   string        `mapstructure:"token_secret"`
	// Max caps the views mounted at once
	Max int `mapstructure:"max"`
}

// LoggingConfig sets the logger level
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:         ":8000",
			Verbose:         true,
			MountsPerMinute: 60,
		},
		Catalog: CatalogConfig{
			DBPath: "./data/eduhub.ddb",
			Seed:   true,
		},
		Views: ViewsConfig{
			TTL:           30 * time.Minute,
			SweepInterval: time.Minute,
			TokenSecret:   DevTokenSecret,
			Max:           10000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers every default with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("server.address", defaults.Server.Address)
	viper.SetDefault("server.verbose", defaults.Server.Verbose)
	viper.SetDefault("server.mounts_per_minute", defaults.Server.MountsPerMinute)

	viper.SetDefault("catalog.db_path", defaults.Catalog.DBPath)
	viper.SetDefault("catalog.seed", defaults.Catalog.Seed)

	viper.SetDefault("views.ttl", defaults.Views.TTL.String())
	viper.SetDefault("views.sweep_interval", defaults.Views.SweepInterval.String())
	viper.SetDefault("views.token_secret", defaults.Views.TokenSecret)
	viper.SetDefault("views.max", defaults.Views.Max)

	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load unmarshals the current viper state and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address must not be empty"))
	}
	if c.Server.MountsPerMinute < 0 {
		errs = append(errs, errors.New("server.mounts_per_minute must not be negative"))
	}
	if c.Views.TTL <= 0 {
		errs = append(errs, errors.New("views.ttl must be positive"))
	}
	if c.Views.SweepInterval <= 0 {
		errs = append(errs, errors.New("views.sweep_interval must be positive"))
	}
	if c.Views.Max <= 0 {
		errs = append(errs, errors.New("views.max must be positive"))
	}
	if len(c.Views.TokenSecret) < 32 {
		errs = append(errs, errors.New("views.token_secret must be at least 32 characters"))
	}

	validLevel := false
	for _, l := range validLevels {
		if strings.EqualFold(c.Logging.Level, l) {
			validLevel = true
		}
	}
	if !validLevel {
		errs = append(errs, errors.New("logging.level must be one of "+strings.Join(validLevels, ", ")))
	}

	return errors.Join(errs...)
}

// DevSecret reports whether views are signed with the built-in development key
func (c *Config) DevSecret() bool {
	return c.Views.TokenSecret == DevTokenSecret
}
