package repository

import (
	"context"
	"errors"
	"roulette_backend/internal/model"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotFound       = errors.New("item not found in inventory")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (created bool, err error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserForUpdate(ctx context.Context, id int64) (*model.User, error)
	AddBalance(ctx context.Context, id int64, delta int) (balance int, err error)
	SetLastDailyBonus(ctx context.Context, id int64, at time.Time) error
	CountUsers(ctx context.Context) (int, error)
}

type InventoryRepository interface {
	AddItem(ctx context.Context, item *model.InventoryItem) (id int64, err error)
	ListItems(ctx context.Context, userID int64) ([]model.InventoryItem, error)
	// TakeItem удаляет предмет по id, а при itemID == 0 - самый старый предмет с таким именем
	TakeItem(ctx context.Context, userID, itemID int64, name string) (*model.InventoryItem, error)
}

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, w *model.Withdrawal) (id int64, err error)
	ListPending(ctx context.Context) ([]model.Withdrawal, error)
	CompleteWithdrawal(ctx context.Context, id int64) error
	CountWithdrawals(ctx context.Context) (int, error)
}

type TransactionRepository interface {
	AddTransaction(ctx context.Context, tx model.Transaction) error
}

type StatsRepository interface {
	RecordSpin(ctx context.Context, userID int64, won int, at time.Time) error
	GetStats(ctx context.Context, userID int64) (model.UserStats, error)
}

// HouseStatsRepository общий RTP рулетки, хранится в памяти процесса
type HouseStatsRepository interface {
	UpdateState(wagered, paid int)
	HouseStats() model.HouseStats
}
