// Package config provides configuration data structures for nestlist.
package config

import (
	"strings"
	"time"
)

// Config represents the complete nestlist configuration loaded from .nestlist/config.yaml.
type Config struct {
	Pages Pages      `yaml:"pages" json:"pages" mapstructure:"pages"`
	Log   LogConfig  `yaml:"log"   json:"log"   mapstructure:"log"`
	Save  SaveConfig `yaml:"save"  json:"save"  mapstructure:"save"`
}

// LogConfig configures the session log file.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is where log files are written (default: .nestlist/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// MaxFiles is how many old log files to keep (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
	// MaxAge removes log files older than this (default: 168h).
	MaxAge time.Duration `yaml:"max_age" json:"max_age" mapstructure:"max_age"`
	// JSON switches the log format from text to JSON.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// SaveConfig configures the save command.
type SaveConfig struct {
	// Notice is shown in the header after a successful save (default: "SAVED!").
	Notice string `yaml:"notice" json:"notice" mapstructure:"notice"`
	// NoticeTTL is how long a notice stays visible; zero keeps it until the next navigation.
	NoticeTTL time.Duration `yaml:"notice_ttl" json:"notice_ttl" mapstructure:"notice_ttl"`
}

// Default values.
const (
	DefaultLogLevel    = "info"
	DefaultLogDir      = ".nestlist/logs"
	DefaultMaxLogFiles = 10
	DefaultMaxLogAge   = 7 * 24 * time.Hour
	DefaultSaveNotice  = "SAVED!"
	DefaultNoticeTTL   = 3 * time.Second
)

// ValidLogLevels lists the accepted values of log.level.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Pages: Pages{},
		Log: LogConfig{
			Level:    DefaultLogLevel,
			Dir:      DefaultLogDir,
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   DefaultMaxLogAge,
		},
		Save: SaveConfig{
			Notice:    DefaultSaveNotice,
			NoticeTTL: DefaultNoticeTTL,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Pages == nil {
		c.Pages = Pages{}
	}
	for i := range c.Pages {
		c.Pages[i].applyDefaults(i)
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = defaults.Log.MaxAge
	}

	if c.Save.Notice == "" {
		c.Save.Notice = defaults.Save.Notice
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	valid := false
	for _, lvl := range ValidLogLevels {
		if strings.EqualFold(c.Log.Level, lvl) {
			valid = true
			break
		}
	}
	if c.Log.Level != "" && !valid {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be one of " + strings.Join(ValidLogLevels, ", "),
		})
	}
	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age", Message: "must be non-negative"})
	}
	if c.Save.NoticeTTL < 0 {
		errs = append(errs, &ValidationError{Field: "save.notice_ttl", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
