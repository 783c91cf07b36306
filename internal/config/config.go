package config

import (
	"roulette_backend/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type RouletteConfig interface {
	Items() []model.RewardItem
	Bonuses() []model.BonusTier
	SpinCost() int
	CreditWins() bool
	BonusCooldown() time.Duration
	StartingBalance() int
}

type HTTPConfig interface {
	Address() string
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
	ActionTimeout() time.Duration
	AllowedOrigins() []string
}

type PGConfig interface {
	DSN() string
	MigrateOnStart() bool
}

// RedisConfig пустой Addr - блокировки внутри процесса
type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
	LockTTL() time.Duration
}

// AMQPConfig пустой URL - заявки на вывод только логируются
type AMQPConfig interface {
	URL() string
	Queue() string
}

type LogConfig interface {
	Mode() string
	Level() string
}

type AdminConfig interface {
	Token() string
}

const (
	StoragePostgres = "postgres"
	// StorageMemory данные живут до рестарта процесса
	StorageMemory = "memory"
)

type StorageConfig interface {
	Driver() string
	RouletteConfigPath() string
}
