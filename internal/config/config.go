// Package config loads the relay settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment variables read by Load.
const (
	EnvOutputBucket = "OUTPUT_BUCKET_NAME"
	EnvLogLevel     = "LOG_LEVEL"
	EnvFunctionName = "AWS_LAMBDA_FUNCTION_NAME"
)

// FlagOutputBucket overrides EnvOutputBucket when set on the flag set passed to Load.
const FlagOutputBucket = "output-bucket"

// Config holds the relay settings shared by the Lambda and the CLI.
type Config struct {
	OutputBucket string `mapstructure:"output_bucket" validate:"required"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	FunctionName string `mapstructure:"function_name"`
}

// SlogLevel maps LogLevel onto a slog level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads the configuration from the environment. Flags, when given,
// take precedence for the keys they define.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")

	if err := v.BindEnv("output_bucket", EnvOutputBucket); err != nil {
		return nil, fmt.Errorf("failed to bind %s environment variable: %w", EnvOutputBucket, err)
	}
	if err := v.BindEnv("log_level", EnvLogLevel); err != nil {
		return nil, fmt.Errorf("failed to bind %s environment variable: %w", EnvLogLevel, err)
	}
	if err := v.BindEnv("function_name", EnvFunctionName); err != nil {
		return nil, fmt.Errorf("failed to bind %s environment variable: %w", EnvFunctionName, err)
	}

	if flags != nil {
		if f := flags.Lookup(FlagOutputBucket); f != nil {
			if err := v.BindPFlag("output_bucket", f); err != nil {
				return nil, fmt.Errorf("failed to bind --%s flag: %w", FlagOutputBucket, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values and reports every failing field.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("failed to validate configuration: %w", err)
		}
		msgs := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			msgs = append(msgs, fe.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return nil
}
