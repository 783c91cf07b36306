package memory_repo

import (
	"context"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"time"
)

func (s *Store) Stats() repository.StatsRepository { return (*statsRepo)(s) }

func (s *Store) Ledger() repository.TransactionRepository { return (*ledgerRepo)(s) }

type statsRepo Store

func (r *statsRepo) RecordSpin(_ context.Context, userID int64, won int, at time.Time) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st := r.data.stats[userID]
	st.SpinsCount++
	st.TotalWon += won
	st.LastSpin = &at
	r.data.stats[userID] = st
	return nil
}

func (r *statsRepo) GetStats(_ context.Context, userID int64) (model.UserStats, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.data.stats[userID], nil
}

type ledgerRepo Store

func (r *ledgerRepo) AddTransaction(_ context.Context, tx model.Transaction) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.data.transactions = append(r.data.transactions, tx)
	return nil
}
