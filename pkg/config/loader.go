package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load merges the given .env files into the process environment and parses
// the environment into v.
//
// With no files, the default .env file is loaded if present and a missing
// file is not an error.
//
// Example:
//
//	type DemoConfig struct {
//		Service string `env:"SERVICE_NAME" envDefault:"demo"`
//	}
//
//	var cfg DemoConfig
//	err := config.Load(&cfg, "./config/.env")
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(files) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
