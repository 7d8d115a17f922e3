// Package config handles configuration loading and validation for
// autocorrect. It uses Viper for configuration management and
// go-playground/validator for validation.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	aerrors "github.com/edgard/autocorrect/internal/errors"
)

// Config is the root configuration structure loaded from .autocorrectrc
// (or a path given with --config) and overridden by AUTOCORRECT_* env vars.
type Config struct {
	Ignore       []string `mapstructure:"ignore"`
	Rules        Rules    `mapstructure:"rules" validate:"required"`
	DebugLogging bool     `mapstructure:"debug_logging"`
}

// Rules toggles one rewrite family of the plain-text engine on or off.
// All four default to true: a config file only needs to name the rule it
// wants disabled.
type Rules struct {
	Spacing     bool `mapstructure:"spacing"`
	Fullwidth   bool `mapstructure:"fullwidth"`
	Halfwidth   bool `mapstructure:"halfwidth"`
	DashSpacing bool `mapstructure:"dash_spacing"`
}

// Load reads configPath (or, if empty, searches the current directory for
// ".autocorrectrc"), merges AUTOCORRECT_-prefixed environment overrides,
// and validates the result.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("ignore", []string{})
	v.SetDefault("rules.spacing", true)
	v.SetDefault("rules.fullwidth", true)
	v.SetDefault("rules.halfwidth", true)
	v.SetDefault("rules.dash_spacing", true)
	v.SetDefault("debug_logging", false)

	explicit := configPath != ""
	if !explicit {
		configPath = ".autocorrectrc"
	}

	// SetConfigFile rather than SetConfigName+AddConfigPath: ".autocorrectrc"
	// has no extension for Viper to infer the format from, so the type must
	// be named explicitly.
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if _, statErr := os.Stat(configPath); statErr != nil {
		if explicit || !os.IsNotExist(statErr) {
			return nil, aerrors.NewConfigError("failed to read config file '"+configPath+"'", statErr)
		}
		// No .autocorrectrc in the default location: fall through and use
		// defaults plus any AUTOCORRECT_ environment overrides.
	} else if err := v.ReadInConfig(); err != nil {
		return nil, aerrors.NewConfigError("failed to read config file '"+configPath+"'", err)
	}

	v.SetEnvPrefix("AUTOCORRECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, aerrors.NewConfigError("failed to unmarshal configuration", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, aerrors.NewConfigError("configuration validation failed", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no .autocorrectrc is present
// and no overrides apply: every rule enabled, nothing ignored.
func Default() *Config {
	return &Config{
		Rules: Rules{Spacing: true, Fullwidth: true, Halfwidth: true, DashSpacing: true},
	}
}
