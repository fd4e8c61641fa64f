package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type metricsEnv struct {
	Enabled         bool          `env:"METRICS_ENABLED" envDefault:"false"`
	Host            string        `env:"METRICS_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"METRICS_PORT" envDefault:"9090"`
	ShutdownTimeout time.Duration `env:"METRICS_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type metrics struct {
	raw metricsEnv
}

func NewMetricsConfig() (*metrics, error) {
	var raw metricsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &metrics{raw: raw}, nil
}

func (cfg *metrics) Enabled() bool { return cfg.raw.Enabled }
func (cfg *metrics) Address() string {
	return fmt.Sprintf("%s:%d", cfg.raw.Host, cfg.raw.Port)
}
func (cfg *metrics) ShutdownTimeout() time.Duration { return cfg.raw.ShutdownTimeout }
