package envconfig

import (
	"github.com/caarlos0/env/v11"
)

type reportEnv struct {
	Enabled bool   `env:"REPORT_ENABLED" envDefault:"false"`
	Path    string `env:"REPORT_PATH" envDefault:"warehouse.xlsx"`
}

type report struct {
	raw reportEnv
}

func NewReportConfig() (*report, error) {
	var raw reportEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &report{raw: raw}, nil
}

func (cfg *report) Enabled() bool { return cfg.raw.Enabled }
func (cfg *report) Path() string  { return cfg.raw.Path }
