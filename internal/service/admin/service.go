package admin

import (
	"context"
	"fmt"
	"roulette_backend/internal/lock"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/roulette"
	"roulette_backend/internal/service"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

const defaultActionTimeout = 5 * time.Second

type Deps struct {
	UserRepo       repository.UserRepository
	WithdrawalRepo repository.WithdrawalRepository
	LedgerRepo     repository.TransactionRepository
	HouseStatsRepo repository.HouseStatsRepository
	Locker         lock.Locker
	TxManager      trm.Manager
	Log            *zap.Logger
	Now            func() time.Time
	// ActionTimeout ограничение на изменение баланса вместе с ожиданием блокировки
	ActionTimeout time.Duration
}

type serv struct {
	userRepo       repository.UserRepository
	withdrawalRepo repository.WithdrawalRepository
	ledgerRepo     repository.TransactionRepository
	houseStatsRepo repository.HouseStatsRepository
	locker         lock.Locker
	txManager      trm.Manager
	log            *zap.Logger
	now            func() time.Time
	timeout        time.Duration
}

func NewAdminService(deps Deps) service.AdminService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	timeout := deps.ActionTimeout
	if timeout <= 0 {
		timeout = defaultActionTimeout
	}
	return &serv{
		userRepo:       deps.UserRepo,
		withdrawalRepo: deps.WithdrawalRepo,
		ledgerRepo:     deps.LedgerRepo,
		houseStatsRepo: deps.HouseStatsRepo,
		locker:         deps.Locker,
		txManager:      deps.TxManager,
		log:            deps.Log.Named("admin"),
		now:            now,
		timeout:        timeout,
	}
}

func (s *serv) PendingWithdrawals(ctx context.Context) ([]model.Withdrawal, error) {
	return s.withdrawalRepo.ListPending(ctx)
}

func (s *serv) CompleteWithdrawal(ctx context.Context, id int64) error {
	if err := s.withdrawalRepo.CompleteWithdrawal(ctx, id); err != nil {
		return err
	}
	s.log.Info("withdrawal completed", zap.Int64("withdrawal_id", id))
	return nil
}

// AddStars начисляет (или списывает при amount < 0) звёзды. Баланс не уходит в минус
func (s *serv) AddStars(ctx context.Context, userID int64, amount int) (int, error) {
	if userID <= 0 || amount == 0 {
		return 0, fmt.Errorf("%w: user_id and non-zero amount are required", service.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	unlock, err := s.locker.Lock(ctx, lock.UserKey(userID))
	if err != nil {
		return 0, err
	}
	defer unlock()

	var balance int
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUserForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if user.Balance+amount < 0 {
			return roulette.ErrInsufficientFunds
		}

		balance, err = s.userRepo.AddBalance(txCtx, userID, amount)
		if err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		return s.ledgerRepo.AddTransaction(txCtx, model.Transaction{
			UserID:      userID,
			Type:        model.TxAdminAdd,
			Amount:      amount,
			Description: "Начисление администратором",
		})
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("stars added", zap.Int64("user_id", userID), zap.Int("amount", amount), zap.Int("balance", balance))
	return balance, nil
}

func (s *serv) Stats(ctx context.Context) (*model.AdminStats, error) {
	users, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	withdrawals, err := s.withdrawalRepo.CountWithdrawals(ctx)
	if err != nil {
		return nil, fmt.Errorf("count withdrawals: %w", err)
	}

	return &model.AdminStats{
		TotalUsers:       users,
		TotalWithdrawals: withdrawals,
		ServerTime:       s.now(),
		House:            s.houseStatsRepo.HouseStats(),
	}, nil
}
