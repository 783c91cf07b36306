package env

import (
	"errors"
	"fmt"
	"os"
	"roulette_backend/internal/config"
	"roulette_backend/internal/model"
	"roulette_backend/internal/roulette"
	"time"

	"gopkg.in/yaml.v3"
)

type rouletteFile struct {
	Roulette rouletteConfig `yaml:"roulette"`
}

type rouletteConfig struct {
	Cost       int                `yaml:"spin_cost"`
	Credit     *bool              `yaml:"credit_wins"`
	Cooldown   *time.Duration     `yaml:"bonus_cooldown"`
	StartStars int                `yaml:"starting_balance"`
	RewardList []model.RewardItem `yaml:"items"`
	BonusList  []model.BonusTier  `yaml:"daily_bonus"`
}

// NewRouletteConfigFromYAML читает таблицы рулетки из yaml.
// Незаданные поля берутся из стандартных правил и таблиц
func NewRouletteConfigFromYAML(path string) (config.RouletteConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roulette config: %w", err)
	}
	return parseRouletteConfig(raw)
}

func parseRouletteConfig(raw []byte) (config.RouletteConfig, error) {
	var file rouletteFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse roulette config: %w", err)
	}

	cfg := file.Roulette
	rules := roulette.DefaultRules()

	if cfg.Cost == 0 {
		cfg.Cost = rules.SpinCost
	}
	if cfg.Cost < 0 {
		return nil, errors.New("spin_cost must be positive")
	}
	if cfg.Credit == nil {
		cfg.Credit = &rules.CreditWins
	}
	if cfg.Cooldown == nil {
		cfg.Cooldown = &rules.BonusCooldown
	}
	if *cfg.Cooldown < 0 {
		return nil, errors.New("bonus_cooldown must not be negative")
	}
	if cfg.StartStars < 0 {
		return nil, errors.New("starting_balance must not be negative")
	}
	if len(cfg.RewardList) == 0 {
		cfg.RewardList = roulette.DefaultItems()
	}
	if len(cfg.BonusList) == 0 {
		cfg.BonusList = roulette.DefaultBonuses()
	}

	return &cfg, nil
}

func (cfg *rouletteConfig) Items() []model.RewardItem {
	return cfg.RewardList
}

func (cfg *rouletteConfig) Bonuses() []model.BonusTier {
	return cfg.BonusList
}

func (cfg *rouletteConfig) SpinCost() int {
	return cfg.Cost
}

func (cfg *rouletteConfig) CreditWins() bool {
	return *cfg.Credit
}

func (cfg *rouletteConfig) BonusCooldown() time.Duration {
	return *cfg.Cooldown
}

func (cfg *rouletteConfig) StartingBalance() int {
	return cfg.StartStars
}
