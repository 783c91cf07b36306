package env

import (
	"errors"
	"roulette_backend/internal/config"
	"time"

	"github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Host    string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port    string        `env:"HTTP_PORT" envDefault:"5000"`
	Read    time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	Write   time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	Action  time.Duration `env:"ACTION_TIMEOUT" envDefault:"5s"`
	Origins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Port) == 0 {
		return nil, errors.New("http port not found")
	}
	if cfg.Action <= 0 {
		return nil, errors.New("action timeout must be positive")
	}

	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.Host + ":" + cfg.Port
}

func (cfg *httpConfig) ReadTimeout() time.Duration {
	return cfg.Read
}

func (cfg *httpConfig) WriteTimeout() time.Duration {
	return cfg.Write
}

func (cfg *httpConfig) ActionTimeout() time.Duration {
	return cfg.Action
}

func (cfg *httpConfig) AllowedOrigins() []string {
	return cfg.Origins
}
