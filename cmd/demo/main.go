package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/dispatchkit/pkg/config"
	"github.com/dmitrymomot/dispatchkit/pkg/dispatch"
	"github.com/dmitrymomot/dispatchkit/pkg/logger"
)

type demoConfig struct {
	Service   string `env:"SERVICE_NAME" envDefault:"dispatchkit-demo"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

var defaultConfig = demoConfig{
	Service:   "dispatchkit-demo",
	LogLevel:  "info",
	LogFormat: "text",
}

// loadConfig reads the demo configuration from the environment and the given
// .env files. On failure it returns the defaults together with the load error.
func loadConfig(files ...string) (demoConfig, error) {
	var cfg demoConfig
	if err := config.Load(&cfg, files...); err != nil {
		return defaultConfig, err
	}
	return cfg, nil
}

func main() {
	cfg, cfgErr := loadConfig()

	format := logger.FormatText
	if cfg.LogFormat == string(logger.FormatJSON) {
		format = logger.FormatJSON
	}
	l := logger.New(
		logger.WithFormat(format),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithService(cfg.Service),
	)
	logger.SetAsDefault(l)

	if cfgErr != nil {
		l.Warn("using default configuration", logger.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := dispatch.New(dispatch.WithLogger(l))
	if err := run(ctx, f, os.Stdout); err != nil {
		l.ErrorContext(ctx, "demo finished with error", logger.Error(err))
		return
	}
	l.DebugContext(ctx, "demo finished")
}
