// Copyright (c) 2026 Cardform Team
// Cardform - credit card entry form demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and writes the cardform configuration. Values come,
// in increasing precedence, from defaults, cardform.yaml, CARDFORM_* env
// vars and bound command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = "cardform"
	envPrefix  = "cardform"
)

// Config is the full application configuration.
type Config struct {
	Language   string           `mapstructure:"language" yaml:"language" validate:"required,oneof=en de"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Reader     ReaderConfig     `mapstructure:"reader" yaml:"reader"`
	Validation ValidationConfig `mapstructure:"validation" yaml:"validation"`
	Preview    PreviewConfig    `mapstructure:"preview" yaml:"preview"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	// File receives log output. Empty keeps the TUI silent.
	File string `mapstructure:"file" yaml:"file"`
}

// ReaderConfig times the simulated card reader that runs after submit.
type ReaderConfig struct {
	InitialDelay time.Duration `mapstructure:"initial_delay" yaml:"initial_delay" validate:"gte=0"`
	Interval     time.Duration `mapstructure:"interval" yaml:"interval" validate:"gt=0"`
	Steps        int           `mapstructure:"steps" yaml:"steps" validate:"min=1,max=8"`
}

type ValidationConfig struct {
	Luhn bool `mapstructure:"luhn" yaml:"luhn"`
}

type PreviewConfig struct {
	// Flip turns the card preview around while the CVV field has focus.
	Flip bool `mapstructure:"flip" yaml:"flip"`
}

// Defaults returns the default value of every key, keyed the way viper
// addresses them.
func Defaults() map[string]any {
	return map[string]any{
		"language":             "en",
		"log.level":            "info",
		"log.file":             "",
		"reader.initial_delay": 400 * time.Millisecond,
		"reader.interval":      800 * time.Millisecond,
		"reader.steps":         4,
		"validation.luhn":      false,
		"preview.flip":         true,
	}
}

// Default is the configuration used without any file, env var or flag.
func Default() Config {
	return Config{
		Language: "en",
		Log:      LogConfig{Level: "info"},
		Reader: ReaderConfig{
			InitialDelay: 400 * time.Millisecond,
			Interval:     800 * time.Millisecond,
			Steps:        4,
		},
		Preview: PreviewConfig{Flip: true},
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Cardform")
		default:
			configDir = "/etc/cardform"
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, "cardform")
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// LoadConfig builds a T from defaults, the first cardform.yaml found (or
// explicitPath when set), the environment and the flags of cmd. It returns
// the config file that was read, or "" when none was found.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, the defaults apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, "", fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, "", fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("decode config: %w", err)
	}
	return c, v.ConfigFileUsed(), nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks c against the rules in its struct tags.
func Validate(c *Config) error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// Marshal renders c as YAML.
func Marshal[T any](c *T) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteConfigFile writes c to the user (or system) config path and returns
// that path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c to path, creating its directory.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	return os.WriteFile(path, data, 0o600)
}
