package admin

import (
	"context"
	"errors"
	"roulette_backend/internal/lock"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/repository/house_stats_repo"
	"roulette_backend/internal/repository/memory_repo"
	"roulette_backend/internal/roulette"
	"roulette_backend/internal/service"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestService(store *memory_repo.Store, now time.Time) service.AdminService {
	house := house_stats_repo.NewHouseStatsRepository(10)
	house.UpdateState(25, 50)
	return NewAdminService(Deps{
		UserRepo:       store.Users(),
		WithdrawalRepo: store.Withdrawals(),
		LedgerRepo:     store.Ledger(),
		HouseStatsRepo: house,
		Locker:         lock.NewLocal(),
		TxManager:      store,
		Log:            zap.NewNop(),
		Now:            func() time.Time { return now },
	})
}

func TestAddStars(t *testing.T) {
	store := memory_repo.NewStore()
	serv := newTestService(store, time.Now())
	ctx := context.Background()
	_, _ = store.Users().CreateUser(ctx, &model.User{ID: 1, Balance: 10})

	tests := []struct {
		name        string
		userID      int64
		amount      int
		wantBalance int
		wantErr     error
	}{
		{name: "credit", userID: 1, amount: 40, wantBalance: 50},
		{name: "debit", userID: 1, amount: -20, wantBalance: 30},
		{name: "overdraw", userID: 1, amount: -31, wantErr: roulette.ErrInsufficientFunds},
		{name: "zero amount", userID: 1, amount: 0, wantErr: service.ErrInvalidArgument},
		{name: "unknown user", userID: 2, amount: 5, wantErr: repository.ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, err := serv.AddStars(ctx, tt.userID, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if err == nil && balance != tt.wantBalance {
				t.Fatalf("expected balance %d, got %d", tt.wantBalance, balance)
			}
		})
	}

	txs := store.Transactions()
	if len(txs) != 2 || txs[0].Type != model.TxAdminAdd || txs[1].Amount != -20 {
		t.Fatalf("unexpected ledger: %+v", txs)
	}
}

func TestAddStarsTimesOutOnBusyUser(t *testing.T) {
	store := memory_repo.NewStore()
	ctx := context.Background()
	_, _ = store.Users().CreateUser(ctx, &model.User{ID: 1, Balance: 10})

	locker := lock.NewLocal()
	serv := NewAdminService(Deps{
		UserRepo:       store.Users(),
		WithdrawalRepo: store.Withdrawals(),
		LedgerRepo:     store.Ledger(),
		HouseStatsRepo: house_stats_repo.NewHouseStatsRepository(10),
		Locker:         locker,
		TxManager:      store,
		Log:            zap.NewNop(),
		ActionTimeout:  30 * time.Millisecond,
	})

	unlock, err := locker.Lock(ctx, lock.UserKey(1))
	if err != nil {
		t.Fatal(err)
	}
	defer unlock()

	if _, err := serv.AddStars(ctx, 1, 5); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if u, _ := store.Users().GetUser(ctx, 1); u.Balance != 10 {
		t.Fatalf("balance changed while the user was locked: %d", u.Balance)
	}
}

func TestWithdrawalsAndStats(t *testing.T) {
	store := memory_repo.NewStore()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	serv := newTestService(store, now)
	ctx := context.Background()

	_, _ = store.Users().CreateUser(ctx, &model.User{ID: 1})
	id, _ := store.Withdrawals().CreateWithdrawal(ctx, &model.Withdrawal{UserID: 1, ItemName: "Кубок", ItemValue: 100})

	pending, err := serv.PendingWithdrawals(ctx)
	if err != nil || len(pending) != 1 || pending[0].ID != id {
		t.Fatalf("unexpected pending: %+v, %v", pending, err)
	}

	if err := serv.CompleteWithdrawal(ctx, id); err != nil {
		t.Fatal(err)
	}
	if err := serv.CompleteWithdrawal(ctx, id+1); !errors.Is(err, repository.ErrWithdrawalNotFound) {
		t.Fatalf("expected ErrWithdrawalNotFound, got %v", err)
	}
	pending, _ = serv.PendingWithdrawals(ctx)
	if len(pending) != 0 {
		t.Fatalf("expected no pending withdrawals, got %d", len(pending))
	}

	stats, err := serv.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalUsers != 1 || stats.TotalWithdrawals != 1 || !stats.ServerTime.Equal(now) || stats.House.TotalSpins != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
