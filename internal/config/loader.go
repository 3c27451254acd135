// Package config provides configuration loading and management for nestlist.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".nestlist/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "NESTLIST"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
//
// If path is empty, DefaultConfigPath is used and a missing file is not an
// error: the defaults (plus environment overrides) are returned. An explicit
// path that does not exist is an error.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	cfg := NewConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, &LoadError{
				Path:    path,
				Message: "config file not found",
				Err:     err,
			}
		}
		return l.finish(cfg, path)
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	return l.finish(cfg, path)
}

func (l *Loader) finish(cfg *Config, path string) (*Config, error) {
	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .nestlist/config.yaml in the specified directory.
// A missing file yields the defaults.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigPath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return l.finish(NewConfig(), path)
	}
	return l.LoadConfig(path)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Pages cannot be set from the environment.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_JSON"); v != "" {
		cfg.Log.JSON = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOG_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Log.MaxAge = d
		}
	}

	if v := os.Getenv(EnvPrefix + "_SAVE_NOTICE"); v != "" {
		cfg.Save.Notice = v
	}
	if v := os.Getenv(EnvPrefix + "_SAVE_NOTICE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Save.NoticeTTL = d
		}
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook lets durations be written as strings like "3s" or "168h".
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
