package env

import (
	"roulette_backend/internal/config"

	"github.com/caarlos0/env/v11"
)

type amqpConfig struct {
	Url       string `env:"AMQP_URL"`
	QueueName string `env:"AMQP_WITHDRAWAL_QUEUE" envDefault:"withdrawals"`
}

func NewAMQPConfig() (config.AMQPConfig, error) {
	var cfg amqpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *amqpConfig) URL() string {
	return cfg.Url
}

func (cfg *amqpConfig) Queue() string {
	return cfg.QueueName
}
