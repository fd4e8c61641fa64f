package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/stroyteam/supplydesk/internal/config/env"
)

var cfg *config

type config struct {
	API     API
	Auth    Auth
	Logger  Logger
	Metrics Metrics
	Report  Report
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	apiCfg, err := envconfig.NewAPIConfig()
	if err != nil {
		return fmt.Errorf("%s API: %w", op, err)
	}

	authCfg, err := envconfig.NewAuthConfig()
	if err != nil {
		return fmt.Errorf("%s Auth: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	metricsCfg, err := envconfig.NewMetricsConfig()
	if err != nil {
		return fmt.Errorf("%s Metrics: %w", op, err)
	}

	reportCfg, err := envconfig.NewReportConfig()
	if err != nil {
		return fmt.Errorf("%s Report: %w", op, err)
	}

	cfg = &config{
		API:     apiCfg,
		Auth:    authCfg,
		Logger:  loggerCfg,
		Metrics: metricsCfg,
		Report:  reportCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
