package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "VOIDRIFT_"

// ParseEnv overlays environment variables onto target. Fields without a
// matching variable keep their current value.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads an optional .env file and applies overrides to the global
// configuration.
func Load(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load dotenv: %w", err)
	}
	for _, target := range []any{C, &Net, &Interp, &Aim, &Input, &Controller, &Camera, &App} {
		if err := ParseEnv(target); err != nil {
			return err
		}
	}
	return nil
}
