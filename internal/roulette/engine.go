package roulette

import (
	"errors"
	"fmt"
	"roulette_backend/internal/model"
	"time"
)

const (
	// DefaultSpinCost цена одного спина в звёздах
	DefaultSpinCost = 25
	// DefaultBonusCooldown бонус доступен раз в сутки
	DefaultBonusCooldown = 24 * time.Hour
)

// Rules правила изменения баланса
type Rules struct {
	SpinCost int
	// CreditWins - зачислять ли стоимость выигранного предмета на баланс
	CreditWins bool
	// BonusCooldown - 0 снимает ограничение
	BonusCooldown time.Duration
}

func DefaultRules() Rules {
	return Rules{
		SpinCost:      DefaultSpinCost,
		CreditWins:    true,
		BonusCooldown: DefaultBonusCooldown,
	}
}

// Engine общее ядро для локальной сессии и серверных обработчиков
type Engine struct {
	items   *Table[model.RewardItem]
	bonuses *Table[model.BonusTier]
	rules   Rules
	now     func() time.Time
}

type Option func(*engineOptions)

type engineOptions struct {
	src Source
	now func() time.Time
}

func WithSource(src Source) Option {
	return func(o *engineOptions) { o.src = src }
}

func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) { o.now = now }
}

func NewEngine(items []model.RewardItem, bonuses []model.BonusTier, rules Rules, opts ...Option) (*Engine, error) {
	o := engineOptions{src: DefaultSource, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if rules.SpinCost <= 0 {
		return nil, errors.New("spin cost must be positive")
	}
	if rules.BonusCooldown < 0 {
		return nil, errors.New("bonus cooldown must not be negative")
	}

	for _, it := range items {
		if it.Value < 0 {
			return nil, errors.New("item value must not be negative: " + it.Name)
		}
	}
	for _, b := range bonuses {
		if b.Amount < 0 {
			return nil, errors.New("bonus amount must not be negative")
		}
	}

	itemTable, err := NewTable(items, func(it model.RewardItem) float64 { return it.Weight }, o.src)
	if err != nil {
		return nil, fmt.Errorf("roulette table: %w", err)
	}
	bonusTable, err := NewTable(bonuses, func(b model.BonusTier) float64 { return b.Weight }, o.src)
	if err != nil {
		return nil, fmt.Errorf("bonus table: %w", err)
	}

	return &Engine{
		items:   itemTable,
		bonuses: bonusTable,
		rules:   rules,
		now:     o.now,
	}, nil
}

func (e *Engine) Rules() Rules {
	return e.rules
}

func (e *Engine) Items() *Table[model.RewardItem] {
	return e.items
}

func (e *Engine) Bonuses() *Table[model.BonusTier] {
	return e.bonuses
}

func (e *Engine) Now() time.Time {
	return e.now()
}

// Spin проверяет баланс, списывает цену, тянет предмет и начисляет выигрыш.
// Ничего не хранит: вызывающий сам сохраняет новый баланс и предмет
func (e *Engine) Spin(balance int) (model.SpinResult, error) {
	if balance < e.rules.SpinCost {
		return model.SpinResult{}, ErrInsufficientFunds
	}

	item, err := e.items.Select()
	if err != nil {
		return model.SpinResult{}, err
	}

	balance -= e.rules.SpinCost
	if e.rules.CreditWins {
		balance += item.Value
	}

	return model.SpinResult{
		Item:    item,
		Cost:    e.rules.SpinCost,
		Balance: balance,
	}, nil
}

// Delta изменение баланса от одного спина с выпавшим предметом
func (e *Engine) Delta(item model.RewardItem) int {
	if e.rules.CreditWins {
		return item.Value - e.rules.SpinCost
	}
	return -e.rules.SpinCost
}

// CheckBonus возвращает *BonusCooldownError, если с прошлого бонуса прошло меньше кулдауна
func (e *Engine) CheckBonus(last *time.Time) error {
	if last == nil || e.rules.BonusCooldown == 0 {
		return nil
	}
	passed := e.now().Sub(*last)
	if passed < e.rules.BonusCooldown {
		return &BonusCooldownError{Remaining: e.rules.BonusCooldown - passed}
	}
	return nil
}

// ClaimBonus тянет ступень бонуса и начисляет её. Возвращает время получения
func (e *Engine) ClaimBonus(balance int, last *time.Time) (model.BonusResult, time.Time, error) {
	if err := e.CheckBonus(last); err != nil {
		return model.BonusResult{}, time.Time{}, err
	}

	tier, err := e.bonuses.Select()
	if err != nil {
		return model.BonusResult{}, time.Time{}, err
	}

	return model.BonusResult{
		Amount:  tier.Amount,
		Balance: balance + tier.Amount,
	}, e.now(), nil
}

// ExpectedSpinValue матожидание выигрыша за спин
func (e *Engine) ExpectedSpinValue() float64 {
	return e.items.ExpectedValue(func(it model.RewardItem) int { return it.Value })
}

// HouseEdge ожидаемый проигрыш игрока за спин. Отрицательное значение - рулетка в минусе
func (e *Engine) HouseEdge() float64 {
	if !e.rules.CreditWins {
		return float64(e.rules.SpinCost)
	}
	return float64(e.rules.SpinCost) - e.ExpectedSpinValue()
}

// ExpectedBonus матожидание ежедневного бонуса
func (e *Engine) ExpectedBonus() float64 {
	return e.bonuses.ExpectedValue(func(b model.BonusTier) int { return b.Amount })
}
