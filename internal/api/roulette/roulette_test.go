package roulette

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/lock"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository/house_stats_repo"
	"roulette_backend/internal/repository/memory_repo"
	game "roulette_backend/internal/roulette"
	rouletteServ "roulette_backend/internal/service/roulette"
	"roulette_backend/pkg/resp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type firstEntry struct{}

func (firstEntry) Float64() float64 { return 0 }

func newTestRouter(t *testing.T) (http.Handler, *memory_repo.Store) {
	t.Helper()

	engine, err := game.NewEngine(game.DefaultItems(), game.DefaultBonuses(), game.DefaultRules(), game.WithSource(firstEntry{}))
	if err != nil {
		t.Fatal(err)
	}

	store := memory_repo.NewStore()
	serv := rouletteServ.NewRouletteService(rouletteServ.Deps{
		Engine:         engine,
		UserRepo:       store.Users(),
		InventoryRepo:  store.Inventory(),
		WithdrawalRepo: store.Withdrawals(),
		LedgerRepo:     store.Ledger(),
		StatsRepo:      store.Stats(),
		HouseStatsRepo: house_stats_repo.NewHouseStatsRepository(0),
		Locker:         lock.NewLocal(),
		Notifier:       nopNotifier{},
		TxManager:      store,
	})
	h := NewHandler(HandlerDeps{Serv: serv, Log: zap.NewNop()})

	r := chi.NewRouter()
	r.Post("/api/spin-roulette", h.Spin)
	r.Post("/api/daily-bonus", h.DailyBonus)
	r.Get("/api/inventory/{id}", h.Inventory)
	r.Post("/api/withdraw", h.Withdraw)
	return r, store
}

type nopNotifier struct{}

func (nopNotifier) NotifyWithdrawal(context.Context, model.Withdrawal) error { return nil }

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestSpinHandler(t *testing.T) {
	h, store := newTestRouter(t)
	_, _ = store.Users().CreateUser(context.Background(), &model.User{ID: 1, Balance: 30})

	w := do(t, h, http.MethodPost, "/api/spin-roulette", `{"user_id": 1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	var got dto.SpinResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.WonItem.Name != "Мишка" || got.WonItem.Emoji == "" || got.NewBalance != 20 || got.Cost != 25 {
		t.Fatalf("unexpected response: %+v", got)
	}

	// 20 < 25
	w = do(t, h, http.MethodPost, "/api/spin-roulette", `{"user_id": 1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var e resp.ErrorResponse
	_ = json.NewDecoder(w.Body).Decode(&e)
	if e.Error != "Insufficient balance" {
		t.Fatalf("unexpected error: %q", e.Error)
	}
}

func TestHandlersStatusMapping(t *testing.T) {
	h, store := newTestRouter(t)
	_, _ = store.Users().CreateUser(context.Background(), &model.User{ID: 1})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "no body", method: http.MethodPost, path: "/api/spin-roulette", status: http.StatusBadRequest},
		{name: "no user id", method: http.MethodPost, path: "/api/spin-roulette", body: `{}`, status: http.StatusBadRequest},
		{name: "unknown user", method: http.MethodPost, path: "/api/spin-roulette", body: `{"user_id": 9}`, status: http.StatusNotFound},
		{name: "bonus", method: http.MethodPost, path: "/api/daily-bonus", body: `{"user_id": 1}`, status: http.StatusOK},
		{name: "bonus again", method: http.MethodPost, path: "/api/daily-bonus", body: `{"user_id": 1}`, status: http.StatusBadRequest},
		{name: "bad inventory id", method: http.MethodGet, path: "/api/inventory/abc", status: http.StatusBadRequest},
		{name: "empty inventory", method: http.MethodGet, path: "/api/inventory/1", status: http.StatusOK},
		{name: "withdraw missing", method: http.MethodPost, path: "/api/withdraw", body: `{"user_id": 1, "item_name": "Кубок"}`, status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	h, store := newTestRouter(t)
	_, _ = store.Users().CreateUser(context.Background(), &model.User{ID: 1, Balance: 25})

	if w := do(t, h, http.MethodPost, "/api/spin-roulette", `{"user_id": 1}`); w.Code != http.StatusOK {
		t.Fatalf("spin: %d", w.Code)
	}

	w := do(t, h, http.MethodGet, "/api/inventory/1", "")
	var inv []dto.InventoryItem
	if err := json.NewDecoder(w.Body).Decode(&inv); err != nil || len(inv) != 1 {
		t.Fatalf("unexpected inventory: %v %+v", err, inv)
	}

	w = do(t, h, http.MethodPost, "/api/withdraw",
		`{"user_id": 1, "username": "alice", "item_name": "Мишка", "item_value": 15}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	var got dto.WithdrawResponse
	_ = json.NewDecoder(w.Body).Decode(&got)
	if got.Status != "withdrawal_created" || got.ID == 0 {
		t.Fatalf("unexpected response: %+v", got)
	}

	w = do(t, h, http.MethodGet, "/api/inventory/1", "")
	inv = nil
	_ = json.NewDecoder(w.Body).Decode(&inv)
	if len(inv) != 0 {
		t.Fatalf("item must be removed, got %+v", inv)
	}
}
