package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the configuration from a YAML file overlaid with environment
// variables (ENV wins, then YAML, then env-default tags). CONFIG_PATH selects
// the file; when it is unset and ./config.yaml is absent, environment
// variables and tag defaults alone are used.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit {
		path = defaultConfigPath
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		if readErr := cleanenv.ReadConfig(path, &cfg); readErr != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, readErr)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if readErr := cleanenv.ReadEnv(&cfg); readErr != nil {
			return nil, fmt.Errorf("config: read env: %w", readErr)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
