// Package config loads memoriz settings from a YAML file, environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "MEMORIZ_"

// Speech configures the external text-to-speech command. Args entries may
// contain the {voice} and {text} placeholders.
type Speech struct {
	Command string            `koanf:"command"`
	Args    []string          `koanf:"args"`
	Voices  map[string]string `koanf:"voices"`
}

// Update configures the self-update check.
type Update struct {
	Repo string `koanf:"repo" validate:"required"`
}

type Config struct {
	DB           string `koanf:"db"`
	SessionLimit int    `koanf:"session_limit" validate:"min=1,max=500"`
	Speech       Speech `koanf:"speech"`
	Update       Update `koanf:"update"`
}

// Default returns the built-in configuration, before any file, environment
// or flag overrides.
func Default() Config {
	return Config{
		SessionLimit: 50,
		Speech: Speech{
			Command: "espeak-ng",
			Args:    []string{"-v{voice}", "{text}"},
		},
		Update: Update{Repo: "sidram/memoriz"},
	}
}

// DefaultPath returns the config file path, honoring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "memoriz", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "memoriz", "config.yaml"), nil
}

// Load merges defaults, the YAML file at path (skipped when absent),
// MEMORIZ_* environment variables and flags, then validates the result.
// A nil flags set is allowed.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
