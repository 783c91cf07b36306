package service

import (
	"context"
	"errors"
	"roulette_backend/internal/model"
)

// ErrInvalidArgument некорректные входные данные запроса
var ErrInvalidArgument = errors.New("invalid argument")

type RouletteService interface {
	Spin(ctx context.Context, req model.Spin) (*model.SpinResult, error)
	ClaimDailyBonus(ctx context.Context, req model.DailyBonus) (*model.BonusResult, error)
	Inventory(ctx context.Context, userID int64) ([]model.InventoryItem, error)
	Withdraw(ctx context.Context, req model.Withdraw) (*model.Withdrawal, error)
}

type UserService interface {
	Register(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (*model.UserProfile, error)
	GetStats(ctx context.Context, id int64) (model.UserStats, error)
}

type AdminService interface {
	PendingWithdrawals(ctx context.Context) ([]model.Withdrawal, error)
	CompleteWithdrawal(ctx context.Context, id int64) error
	AddStars(ctx context.Context, userID int64, amount int) (balance int, err error)
	Stats(ctx context.Context) (*model.AdminStats, error)
}

// WithdrawalNotifier передает заявку на вывод во внешнюю выдачу
type WithdrawalNotifier interface {
	NotifyWithdrawal(ctx context.Context, w model.Withdrawal) error
}
