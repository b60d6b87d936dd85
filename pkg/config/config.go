// Package config loads application configuration from environment
// variables, optionally seeded from .env files. It wraps
// github.com/joho/godotenv and github.com/caarlos0/env/v11 behind a
// small generic API: declare a struct with `env` tags and Load it once
// at startup.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load parses the environment into a fresh T. Any given .env files are
// loaded first without overriding variables already present in the
// process environment; a missing .env file is not an error.
func Load[T any](envFiles ...string) (T, error) {
	var cfg T

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on failure, for configuration the
// process cannot start without.
func MustLoad[T any](envFiles ...string) T {
	cfg, err := Load[T](envFiles...)
	if err != nil {
		panic(err)
	}
	return cfg
}
