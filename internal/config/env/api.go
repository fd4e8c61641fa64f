package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type apiEnv struct {
	BaseURL string        `env:"API_BASE_URL,required"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}

type api struct {
	raw apiEnv
}

func NewAPIConfig() (*api, error) {
	var raw apiEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &api{raw: raw}, nil
}

func (cfg *api) BaseURL() string        { return cfg.raw.BaseURL }
func (cfg *api) Timeout() time.Duration { return cfg.raw.Timeout }
