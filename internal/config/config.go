// Package config handles configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"firestige.xyz/v6hdr/internal/core"
)

// Config represents the top-level configuration.
// Maps to the `v6hdr:` root key in YAML.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Decoder DecoderConfig `mapstructure:"decoder"`
	Output  OutputConfig  `mapstructure:"output"`
}

// ─── Log ───

// LogConfig contains logging settings.
type LogConfig struct {
	Level   string           `mapstructure:"level"`   // trace / debug / info / warn / error
	Pattern string           `mapstructure:"pattern"` // see log.Formatter placeholders
	Time    string           `mapstructure:"time"`    // Go time layout for %time
	File    FileOutputConfig `mapstructure:"file"`
}

// FileOutputConfig configures file log output.
type FileOutputConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Path     string         `mapstructure:"path"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`  // MB
	MaxAgeDays int  `mapstructure:"max_age_days"` // Days
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

// ─── Decoder ───

// DecoderConfig controls header decoding.
type DecoderConfig struct {
	// StrictLength rejects input that is not exactly one header long.
	// When false, characters past the header are ignored.
	StrictLength bool `mapstructure:"strict_length"`
}

// ─── Output ───

// OutputConfig selects how decoded headers are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"` // text / json / yaml
}

// ─── Loading ───

// configRoot is the top-level wrapper matching the YAML structure `v6hdr: ...`.
type configRoot struct {
	V6hdr Config `mapstructure:"v6hdr"`
}

// Load loads configuration from path. An empty path skips the file and
// yields defaults plus environment overrides.
// Env vars map through the root key, e.g. "v6hdr.log.level" → V6HDR_LOG_LEVEL.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.V6hdr

	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration.
// All keys use "v6hdr." prefix to match the YAML root wrapper.
func setDefaults(v *viper.Viper) {
	// Log defaults; stdout carries decoded output so logging stays quiet
	v.SetDefault("v6hdr.log.level", "warn")
	v.SetDefault("v6hdr.log.pattern", DefaultLogPattern)
	v.SetDefault("v6hdr.log.time", DefaultLogTime)
	v.SetDefault("v6hdr.log.file.enabled", false)
	v.SetDefault("v6hdr.log.file.path", "/var/log/v6hdr/v6hdr.log")
	v.SetDefault("v6hdr.log.file.rotation.max_size_mb", 10)
	v.SetDefault("v6hdr.log.file.rotation.max_age_days", 7)
	v.SetDefault("v6hdr.log.file.rotation.max_backups", 3)
	v.SetDefault("v6hdr.log.file.rotation.compress", true)

	// Decoder defaults
	v.SetDefault("v6hdr.decoder.strict_length", false)

	// Output defaults
	v.SetDefault("v6hdr.output.format", "text")
}

const (
	DefaultLogPattern = "%time [%level] %field %msg%n"
	DefaultLogTime    = "2006-01-02 15:04:05"
)

var validLevels = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}

var validFormats = map[string]bool{"text": true, "json": true, "yaml": true}

// ValidateAndApplyDefaults validates configuration and fills runtime defaults
// for fields left empty. It is safe to call again after flag overrides.
func (cfg *Config) ValidateAndApplyDefaults() error {
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("%w: invalid log level: %s (must be trace/debug/info/warn/error)", core.ErrConfigInvalid, cfg.Log.Level)
	}
	if cfg.Log.Pattern == "" {
		cfg.Log.Pattern = DefaultLogPattern
	}
	if cfg.Log.Time == "" {
		cfg.Log.Time = DefaultLogTime
	}
	if cfg.Log.File.Enabled && cfg.Log.File.Path == "" {
		return fmt.Errorf("%w: log.file.path is required when log.file.enabled=true", core.ErrConfigInvalid)
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if !validFormats[cfg.Output.Format] {
		return fmt.Errorf("%w: invalid output format: %s (must be text/json/yaml)", core.ErrConfigInvalid, cfg.Output.Format)
	}

	return nil
}
