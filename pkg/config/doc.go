// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional `.env` files are merged into the process environment first (values
// already set in the environment win), then the environment is parsed into a
// struct using field tags.
//
// # Usage
//
//	type LogConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Without file arguments Load reads `.env` from the working directory when it
// exists. Explicitly named files must exist.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a named `.env` file could not be read.
//   - `ErrNilPointer` – nil pointer passed to `Load`/`MustLoad`.
package config
