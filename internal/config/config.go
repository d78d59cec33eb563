// Package config loads pocketpet settings from a file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pocketpet/internal/pet"
)

// Config holds user settings. Decay rates are fixed and deliberately absent.
type Config struct {
	Name     string `toml:"name" yaml:"name" env:"POCKETPET_NAME"`
	LogFile  string `toml:"log_file" yaml:"log_file" env:"POCKETPET_LOG_FILE"`
	Sound    bool   `toml:"sound" yaml:"sound" env:"POCKETPET_SOUND"`
	Haptics  bool   `toml:"haptics" yaml:"haptics" env:"POCKETPET_HAPTICS"`
	BarkClip string `toml:"bark_clip" yaml:"bark_clip" env:"POCKETPET_BARK_CLIP"`
}

// Defaults returns the settings used when nothing overrides them
func Defaults() Config {
	return Config{
		Name:    pet.DefaultPetName,
		LogFile: "pocketpet.log",
		Sound:   true,
		Haptics: true,
	}
}

// Load applies, in order, the defaults, the file at path (if path is not
// empty) and POCKETPET_* environment variables.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Name == "" {
		cfg.Name = pet.DefaultPetName
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}
	return nil
}

// ClipOverrides maps clip ids to files on disk for the audio player
func (c Config) ClipOverrides() map[string]string {
	if c.BarkClip == "" {
		return nil
	}
	return map[string]string{pet.BarkClip: c.BarkClip}
}
