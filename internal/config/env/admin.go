package env

import (
	"roulette_backend/internal/config"

	"github.com/caarlos0/env/v11"
)

type adminConfig struct {
	AdminToken string `env:"ADMIN_TOKEN"`
}

func NewAdminConfig() (config.AdminConfig, error) {
	var cfg adminConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *adminConfig) Token() string {
	return cfg.AdminToken
}
