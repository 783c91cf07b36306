package roulette

import (
	"context"
	"roulette_backend/internal/model"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State снимок сессии
type State struct {
	Balance  int
	WonItems []model.RewardItem
}

// Session локальная сессия без хранения. Каждое действие - один атомарный переход под мьютексом
type Session struct {
	id       string
	username string
	engine   *Engine

	mtx       sync.Mutex
	balance   int
	wonItems  []model.RewardItem
	lastBonus *time.Time
}

func NewSession(engine *Engine, username string, balance int) *Session {
	if balance < 0 {
		balance = 0
	}
	return &Session{
		id:       uuid.NewString(),
		username: username,
		engine:   engine,
		balance:  balance,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Snapshot() State {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return State{
		Balance:  s.balance,
		WonItems: slices.Clone(s.wonItems),
	}
}

// Spin при нехватке баланса возвращает ErrInsufficientFunds и ничего не меняет
func (s *Session) Spin(ctx context.Context) (model.SpinResult, error) {
	if err := ctx.Err(); err != nil {
		return model.SpinResult{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	res, err := s.engine.Spin(s.balance)
	if err != nil {
		return model.SpinResult{}, err
	}

	s.balance = res.Balance
	s.wonItems = append(s.wonItems, res.Item)
	return res, nil
}

func (s *Session) ClaimBonus(ctx context.Context) (model.BonusResult, error) {
	if err := ctx.Err(); err != nil {
		return model.BonusResult{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	res, claimedAt, err := s.engine.ClaimBonus(s.balance, s.lastBonus)
	if err != nil {
		return model.BonusResult{}, err
	}

	s.balance = res.Balance
	s.lastBonus = &claimedAt
	return res, nil
}

// Withdraw убирает предмет по индексу и возвращает заявку. Баланс не меняется
func (s *Session) Withdraw(ctx context.Context, index int) (model.WithdrawalRequest, error) {
	if err := ctx.Err(); err != nil {
		return model.WithdrawalRequest{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if index < 0 || index >= len(s.wonItems) {
		return model.WithdrawalRequest{}, ErrIndexOutOfRange
	}

	item := s.wonItems[index]
	s.wonItems = slices.Delete(s.wonItems, index, index+1)

	return model.WithdrawalRequest{
		ItemName:    item.Name,
		ItemValue:   item.Value,
		RequestedBy: s.username,
	}, nil
}
