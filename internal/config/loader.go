package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load assembles the configuration from a YAML file, environment variables
// and tag defaults, in rising priority (ENV wins over the file). The file
// location comes from CONFIG_PATH; without it, a missing ./config.yaml is not
// an error and ENV + defaults apply alone.
func Load() (*Config, error) {
	var cfg Config

	path, required := configPath()
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	case required:
		return nil, fmt.Errorf("load config %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("load config from env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// configPath resolves the config file location and whether its absence is an
// error. An explicitly configured path must exist; the fallback is optional.
func configPath() (path string, required bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultConfigPath, false
}
