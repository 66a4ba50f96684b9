package config

import (
	"os"

	"github.com/traefik/paerser/env"
	"github.com/traefik/paerser/file"

	"github.com/zekurio/warden/internal/models"
)

// Parse loads the config file at path on top of def, if the file
// exists, and then applies environment variables prefixed with
// envPrefix on top of that.
func Parse(path, envPrefix string, def models.Config) (cfg models.Config, err error) {
	cfg = def

	if _, statErr := os.Stat(path); statErr == nil {
		if err = file.Decode(path, &cfg); err != nil {
			return models.Config{}, err
		}
	}

	if err = env.Decode(os.Environ(), envPrefix, &cfg); err != nil {
		return models.Config{}, err
	}

	return cfg, nil
}
