package memory_repo

import (
	"context"
	"errors"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"time"
)

var errNegativeBalance = errors.New("balance must not be negative")

func (s *Store) Users() repository.UserRepository { return (*userRepo)(s) }

type userRepo Store

func (r *userRepo) CreateUser(_ context.Context, user *model.User) (bool, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.data.users[user.ID]; ok {
		return false, nil
	}
	u := *user
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.data.users[u.ID] = u
	return true, nil
}

func (r *userRepo) GetUser(_ context.Context, id int64) (*model.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	u, ok := r.data.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepo) GetUserForUpdate(ctx context.Context, id int64) (*model.User, error) {
	return r.GetUser(ctx, id)
}

func (r *userRepo) AddBalance(_ context.Context, id int64, delta int) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	u, ok := r.data.users[id]
	if !ok {
		return 0, repository.ErrUserNotFound
	}
	if u.Balance+delta < 0 {
		return 0, errNegativeBalance
	}
	u.Balance += delta
	r.data.users[id] = u
	return u.Balance, nil
}

func (r *userRepo) SetLastDailyBonus(_ context.Context, id int64, at time.Time) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	u, ok := r.data.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.LastDailyBonus = &at
	r.data.users[id] = u
	return nil
}

func (r *userRepo) CountUsers(_ context.Context) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.data.users), nil
}
