package envconfig

import (
	"github.com/caarlos0/env/v11"
)

// Either a ready token or a credentials pair; the application decides which
// path to take at start-up.
type authEnv struct {
	Token    string `env:"AUTH_TOKEN"`
	Email    string `env:"AUTH_EMAIL"`
	Password string `env:"AUTH_PASSWORD"`
}

type auth struct {
	raw authEnv
}

func NewAuthConfig() (*auth, error) {
	var raw authEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &auth{raw: raw}, nil
}

func (cfg *auth) Token() string    { return cfg.raw.Token }
func (cfg *auth) Email() string    { return cfg.raw.Email }
func (cfg *auth) Password() string { return cfg.raw.Password }
