package env

import (
	"fmt"
	"roulette_backend/internal/config"

	"github.com/caarlos0/env/v11"
)

type storageConfig struct {
	Kind         string `env:"STORAGE" envDefault:"postgres"`
	RoulettePath string `env:"ROULETTE_CONFIG" envDefault:"config.yaml"`
}

func NewStorageConfig() (config.StorageConfig, error) {
	var cfg storageConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case config.StoragePostgres, config.StorageMemory:
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Kind)
	}
	return &cfg, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.Kind
}

func (cfg *storageConfig) RouletteConfigPath() string {
	return cfg.RoulettePath
}
