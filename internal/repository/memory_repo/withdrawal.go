package memory_repo

import (
	"context"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"time"
)

func (s *Store) Withdrawals() repository.WithdrawalRepository { return (*withdrawalRepo)(s) }

type withdrawalRepo Store

func (r *withdrawalRepo) CreateWithdrawal(_ context.Context, w *model.Withdrawal) (int64, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.data.nextWithdrawalID++
	w.ID = r.data.nextWithdrawalID
	w.Status = model.WithdrawalPending
	w.CreatedAt = time.Now()
	r.data.withdrawals = append(r.data.withdrawals, *w)
	return w.ID, nil
}

func (r *withdrawalRepo) ListPending(_ context.Context) ([]model.Withdrawal, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	list := make([]model.Withdrawal, 0)
	for i := len(r.data.withdrawals) - 1; i >= 0; i-- {
		if r.data.withdrawals[i].Status == model.WithdrawalPending {
			list = append(list, r.data.withdrawals[i])
		}
	}
	return list, nil
}

func (r *withdrawalRepo) CompleteWithdrawal(_ context.Context, id int64) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for i := range r.data.withdrawals {
		if r.data.withdrawals[i].ID == id {
			r.data.withdrawals[i].Status = model.WithdrawalCompleted
			return nil
		}
	}
	return repository.ErrWithdrawalNotFound
}

func (r *withdrawalRepo) CountWithdrawals(_ context.Context) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.data.withdrawals), nil
}
