package roulette

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
	"sync"
	"testing"
	"time"
)

// seqSource отдает заданные значения по кругу
type seqSource struct {
	mtx    sync.Mutex
	values []float64
	i      int
}

func (s *seqSource) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

type recordingNotifier struct {
	mtx  sync.Mutex
	sent []model.Withdrawal
	err  error
}

func (n *recordingNotifier) NotifyWithdrawal(_ context.Context, w model.Withdrawal) error {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	n.sent = append(n.sent, w)
	return n.err
}

type fixture struct {
	serv     service.RouletteService
	store    *memory_repo.Store
	house    *house_stats_repo.StateRepo
	notifier *recordingNotifier
	now      time.Time
}

// newFixture r - значения генератора в долях единицы (0.99 -> 99 на шкале 0..100)
func newFixture(t *testing.T, r ...float64) *fixture {
	t.Helper()

	f := &fixture{
		store:    memory_repo.NewStore(),
		house:    house_stats_repo.NewHouseStatsRepository(10),
		notifier: &recordingNotifier{},
		now:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if len(r) == 0 {
		r = []float64{0}
	}

	engine, err := roulette.NewEngine(
		roulette.DefaultItems(),
		roulette.DefaultBonuses(),
		roulette.DefaultRules(),
		roulette.WithSource(&seqSource{values: r}),
		roulette.WithClock(func() time.Time { return f.now }),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	f.serv = NewRouletteService(Deps{
		Engine:         engine,
		UserRepo:       f.store.Users(),
		InventoryRepo:  f.store.Inventory(),
		WithdrawalRepo: f.store.Withdrawals(),
		LedgerRepo:     f.store.Ledger(),
		StatsRepo:      f.store.Stats(),
		HouseStatsRepo: f.house,
		Locker:         lock.NewLocal(),
		Notifier:       f.notifier,
		TxManager:      f.store,
		ActionTimeout:  time.Second,
	})
	return f
}

func (f *fixture) addUser(t *testing.T, id int64, balance int) {
	t.Helper()
	_, err := f.store.Users().CreateUser(context.Background(), &model.User{ID: id, Username: "tester", Balance: balance})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func (f *fixture) balance(t *testing.T, id int64) int {
	t.Helper()
	u, err := f.store.Users().GetUser(context.Background(), id)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	return u.Balance
}

func TestSpinPersistsResult(t *testing.T) {
	// 0.99 -> 99 попадает в последний предмет таблицы
	f := newFixture(t, 0.99)
	f.addUser(t, 1, 100)
	ctx := context.Background()

	res, err := f.serv.Spin(ctx, model.Spin{UserID: 1})
	if err != nil {
		t.Fatalf("spin: %v", err)
	}

	items := roulette.DefaultItems()
	want := items[len(items)-1]
	if res.Item.Name != want.Name {
		t.Fatalf("expected %s, got %s", want.Name, res.Item.Name)
	}
	if res.Balance != 100-25+want.Value || f.balance(t, 1) != res.Balance {
		t.Fatalf("unexpected balance: result %d, stored %d", res.Balance, f.balance(t, 1))
	}

	inv, _ := f.serv.Inventory(ctx, 1)
	if len(inv) != 1 || inv[0].ItemName != want.Name || inv[0].ItemValue != want.Value {
		t.Fatalf("unexpected inventory: %+v", inv)
	}

	stats, _ := f.store.Stats().GetStats(ctx, 1)
	if stats.SpinsCount != 1 || stats.TotalWon != want.Value || stats.LastSpin == nil || !stats.LastSpin.Equal(f.now) {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	txs := f.store.Transactions()
	if len(txs) != 2 || txs[0].Type != model.TxRouletteSpin || txs[0].Amount != -25 ||
		txs[1].Type != model.TxItemWon || txs[1].Amount != want.Value {
		t.Fatalf("unexpected ledger: %+v", txs)
	}

	house := f.house.HouseStats()
	if house.TotalSpins != 1 || house.TotalWagered != 25 || house.TotalPaid != want.Value {
		t.Fatalf("unexpected house stats: %+v", house)
	}
}

func TestSpinInsufficientFundsLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, 1, 24)
	ctx := context.Background()

	_, err := f.serv.Spin(ctx, model.Spin{UserID: 1})
	if !errors.Is(err, roulette.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if f.balance(t, 1) != 24 {
		t.Fatalf("balance changed: %d", f.balance(t, 1))
	}
	inv, _ := f.serv.Inventory(ctx, 1)
	if len(inv) != 0 {
		t.Fatalf("inventory changed: %+v", inv)
	}
	if len(f.store.Transactions()) != 0 {
		t.Fatal("ledger changed")
	}
	if f.house.HouseStats().TotalSpins != 0 {
		t.Fatal("house stats changed")
	}
}

func TestSpinValidation(t *testing.T) {
	f := newFixture(t)

	if _, err := f.serv.Spin(context.Background(), model.Spin{}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := f.serv.Spin(context.Background(), model.Spin{UserID: 7}); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestConcurrentSpinsNeverOverdraw(t *testing.T) {
	// 0.0 -> первый предмет (15 звёзд), каждый спин стоит 10 чистыми
	f := newFixture(t, 0)
	f.addUser(t, 1, 100)

	var wg sync.WaitGroup
	var mtx sync.Mutex
	ok, rejected := 0, 0
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.serv.Spin(context.Background(), model.Spin{UserID: 1})
			mtx.Lock()
			defer mtx.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, roulette.ErrInsufficientFunds):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	// 100 -> 90 -> ... -> 30 -> 20: восемь успешных спинов
	if ok != 8 || rejected != 12 {
		t.Fatalf("expected 8 spins and 12 rejections, got %d and %d", ok, rejected)
	}
	if f.balance(t, 1) != 20 {
		t.Fatalf("expected balance 20, got %d", f.balance(t, 1))
	}
}

func TestClaimDailyBonusCooldown(t *testing.T) {
	// 0.0 -> первая ступень бонуса
	f := newFixture(t, 0)
	f.addUser(t, 1, 0)
	ctx := context.Background()

	res, err := f.serv.ClaimDailyBonus(ctx, model.DailyBonus{UserID: 1})
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	first := roulette.DefaultBonuses()[0].Amount
	if res.Amount != first || res.Balance != first {
		t.Fatalf("unexpected result: %+v", res)
	}

	f.now = f.now.Add(23 * time.Hour)
	_, err = f.serv.ClaimDailyBonus(ctx, model.DailyBonus{UserID: 1})
	var cooldown *roulette.BonusCooldownError
	if !errors.As(err, &cooldown) || cooldown.Remaining != time.Hour {
		t.Fatalf("expected cooldown with 1h remaining, got %v", err)
	}
	if f.balance(t, 1) != first {
		t.Fatalf("balance changed on rejected claim: %d", f.balance(t, 1))
	}

	f.now = f.now.Add(time.Hour)
	if _, err := f.serv.ClaimDailyBonus(ctx, model.DailyBonus{UserID: 1}); err != nil {
		t.Fatalf("claim after cooldown: %v", err)
	}
	if f.balance(t, 1) != 2*first {
		t.Fatalf("expected balance %d, got %d", 2*first, f.balance(t, 1))
	}
}

func TestWithdrawByNameAndID(t *testing.T) {
	f := newFixture(t, 0)
	f.addUser(t, 1, 100)
	ctx := context.Background()

	for range 2 {
		if _, err := f.serv.Spin(ctx, model.Spin{UserID: 1}); err != nil {
			t.Fatalf("spin: %v", err)
		}
	}
	balance := f.balance(t, 1)
	inv, _ := f.serv.Inventory(ctx, 1)
	name := inv[0].ItemName

	w, err := f.serv.Withdraw(ctx, model.Withdraw{UserID: 1, ItemName: name})
	if err != nil {
		t.Fatalf("withdraw by name: %v", err)
	}
	if w.ID == 0 || w.Status != model.WithdrawalPending || w.Username != "tester" || w.ItemName != name {
		t.Fatalf("unexpected withdrawal: %+v", w)
	}

	left, _ := f.serv.Inventory(ctx, 1)
	if len(left) != 1 {
		t.Fatalf("expected one item left, got %d", len(left))
	}
	if _, err := f.serv.Withdraw(ctx, model.Withdraw{UserID: 1, Username: "alias", ItemID: left[0].ID}); err != nil {
		t.Fatalf("withdraw by id: %v", err)
	}

	if f.balance(t, 1) != balance {
		t.Fatalf("withdraw changed balance: %d -> %d", balance, f.balance(t, 1))
	}
	if len(f.notifier.sent) != 2 || f.notifier.sent[1].Username != "alias" {
		t.Fatalf("unexpected notifications: %+v", f.notifier.sent)
	}

	pending, _ := f.store.Withdrawals().ListPending(ctx)
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending withdrawals, got %d", len(pending))
	}
}

func TestWithdrawMissingItem(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, 1, 0)
	ctx := context.Background()

	_, err := f.serv.Withdraw(ctx, model.Withdraw{UserID: 1, ItemName: "Кубок"})
	if !errors.Is(err, repository.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := f.serv.Withdraw(ctx, model.Withdraw{UserID: 1}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if len(f.notifier.sent) != 0 {
		t.Fatal("notifier must not be called on failure")
	}
}

func TestWithdrawSurvivesNotifierFailure(t *testing.T) {
	f := newFixture(t, 0)
	f.notifier.err = errors.New("broker is down")
	f.addUser(t, 1, 25)
	ctx := context.Background()

	if _, err := f.serv.Spin(ctx, model.Spin{UserID: 1}); err != nil {
		t.Fatalf("spin: %v", err)
	}
	inv, _ := f.serv.Inventory(ctx, 1)

	if _, err := f.serv.Withdraw(ctx, model.Withdraw{UserID: 1, ItemID: inv[0].ID}); err != nil {
		t.Fatalf("withdraw must succeed when notifier fails: %v", err)
	}
	pending, _ := f.store.Withdrawals().ListPending(ctx)
	if len(pending) != 1 {
		t.Fatalf("expected stored withdrawal, got %d", len(pending))
	}
}
