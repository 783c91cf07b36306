package env

import (
	"roulette_backend/internal/config"
	"time"

	"github.com/caarlos0/env/v11"
)

type redisConfig struct {
	Address string        `env:"REDIS_ADDR"`
	Pass    string        `env:"REDIS_PASSWORD"`
	Index   int           `env:"REDIS_DB" envDefault:"0"`
	TTL     time.Duration `env:"REDIS_LOCK_TTL" envDefault:"10s"`
}

func NewRedisConfig() (config.RedisConfig, error) {
	var cfg redisConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *redisConfig) Addr() string {
	return cfg.Address
}

func (cfg *redisConfig) Password() string {
	return cfg.Pass
}

func (cfg *redisConfig) DB() int {
	return cfg.Index
}

func (cfg *redisConfig) LockTTL() time.Duration {
	return cfg.TTL
}
