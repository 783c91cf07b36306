// Package memory_repo хранит данные в памяти процесса. Используется, когда
// PG_DSN не задан, и в тестах сервисов.
package memory_repo

import (
	"context"
	"maps"
	"roulette_backend/internal/model"
	"slices"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type data struct {
	users        map[int64]model.User
	inventory    []model.InventoryItem
	withdrawals  []model.Withdrawal
	transactions []model.Transaction
	stats        map[int64]model.UserStats

	nextItemID       int64
	nextWithdrawalID int64
}

func (d *data) clone() data {
	c := *d
	c.users = maps.Clone(d.users)
	c.inventory = slices.Clone(d.inventory)
	c.withdrawals = slices.Clone(d.withdrawals)
	c.transactions = slices.Clone(d.transactions)
	c.stats = maps.Clone(d.stats)
	return c
}

// Store реализует все репозитории и менеджер транзакций поверх одной структуры
type Store struct {
	txMtx sync.Mutex
	mtx   sync.Mutex
	data  data
}

func NewStore() *Store {
	return &Store{
		data: data{
			users: make(map[int64]model.User),
			stats: make(map[int64]model.UserStats),
		},
	}
}

type txKey struct{}

var _ trm.Manager = (*Store)(nil)

// Do выполняет fn последовательно с другими транзакциями.
// При ошибке состояние откатывается к снимку на начало транзакции
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMtx.Lock()
	defer s.txMtx.Unlock()

	s.mtx.Lock()
	snapshot := s.data.clone()
	s.mtx.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mtx.Lock()
		s.data = snapshot
		s.mtx.Unlock()
		return err
	}
	return nil
}

func (s *Store) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return s.Do(ctx, fn)
}

// Transactions копия журнала
func (s *Store) Transactions() []model.Transaction {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return slices.Clone(s.data.transactions)
}
