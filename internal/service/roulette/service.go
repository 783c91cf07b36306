package roulette

import (
	"context"
	"errors"
	"roulette_backend/internal/lock"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/roulette"
	"roulette_backend/internal/service"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

const defaultActionTimeout = 5 * time.Second

type Deps struct {
	Engine         *roulette.Engine
	UserRepo       repository.UserRepository
	InventoryRepo  repository.InventoryRepository
	WithdrawalRepo repository.WithdrawalRepository
	LedgerRepo     repository.TransactionRepository
	StatsRepo      repository.StatsRepository
	HouseStatsRepo repository.HouseStatsRepository
	Locker         lock.Locker
	Notifier       service.WithdrawalNotifier
	TxManager      trm.Manager
	Log            *zap.Logger
	// ActionTimeout ограничение на одно действие вместе с ожиданием блокировки
	ActionTimeout time.Duration
}

type serv struct {
	engine         *roulette.Engine
	userRepo       repository.UserRepository
	inventoryRepo  repository.InventoryRepository
	withdrawalRepo repository.WithdrawalRepository
	ledgerRepo     repository.TransactionRepository
	statsRepo      repository.StatsRepository
	houseStatsRepo repository.HouseStatsRepository
	locker         lock.Locker
	notifier       service.WithdrawalNotifier
	txManager      trm.Manager
	log            *zap.Logger
	timeout        time.Duration
}

// NewRouletteService сервис рулетки поверх хранилища
func NewRouletteService(deps Deps) service.RouletteService {
	timeout := deps.ActionTimeout
	if timeout <= 0 {
		timeout = defaultActionTimeout
	}
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &serv{
		engine:         deps.Engine,
		userRepo:       deps.UserRepo,
		inventoryRepo:  deps.InventoryRepo,
		withdrawalRepo: deps.WithdrawalRepo,
		ledgerRepo:     deps.LedgerRepo,
		statsRepo:      deps.StatsRepo,
		houseStatsRepo: deps.HouseStatsRepo,
		locker:         deps.Locker,
		notifier:       deps.Notifier,
		txManager:      deps.TxManager,
		log:            log.Named("roulette"),
		timeout:        timeout,
	}
}

// withUserLock выполняет fn под блокировкой пользователя и с таймаутом действия
func (s *serv) withUserLock(ctx context.Context, userID int64, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	unlock, err := s.locker.Lock(ctx, lock.UserKey(userID))
	if err != nil {
		return err
	}
	defer unlock()

	return fn(ctx)
}

// rejectReason метка причины отказа для метрик
func rejectReason(err error) string {
	switch {
	case errors.Is(err, roulette.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, roulette.ErrBonusNotReady):
		return "bonus_not_ready"
	case errors.Is(err, repository.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, repository.ErrItemNotFound):
		return "item_not_found"
	case errors.Is(err, service.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "internal"
	}
}
