package config

import "time"

type API interface {
	BaseURL() string
	Timeout() time.Duration
}

type Auth interface {
	Token() string
	Email() string
	Password() string
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Metrics interface {
	Enabled() bool
	Address() string
	ShutdownTimeout() time.Duration
}

type Report interface {
	Enabled() bool
	Path() string
}
