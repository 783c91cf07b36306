package env

import (
	"roulette_backend/internal/config"

	"github.com/caarlos0/env/v11"
)

type logConfig struct {
	LogMode  string `env:"LOG_MODE" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *logConfig) Mode() string {
	return cfg.LogMode
}

func (cfg *logConfig) Level() string {
	return cfg.LogLevel
}
