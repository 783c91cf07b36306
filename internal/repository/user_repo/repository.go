package user_repo

import (
	"context"
	"errors"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table             = "users"
	colID             = "user_id"
	colUsername       = "username"
	colBalance        = "balance"
	colLastDailyBonus = "last_daily_bonus"
	colCreatedAt      = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает пользователя, если его еще нет.
// Возвращает false, если пользователь уже существовал
func (r *repo) CreateUser(ctx context.Context, user *model.User) (bool, error) {
	// Формируем запрос
	query := repository.Psql.Insert(table).
		Columns(colID, colUsername, colBalance).
		Values(user.ID, user.Username, user.Balance).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

// GetUser - возвращает пользователя по ID
func (r *repo) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return r.getUser(ctx, id, "")
}

// GetUserForUpdate - то же, что GetUser, но блокирует строку до конца транзакции
func (r *repo) GetUserForUpdate(ctx context.Context, id int64) (*model.User, error) {
	return r.getUser(ctx, id, "FOR UPDATE")
}

func (r *repo) getUser(ctx context.Context, id int64, suffix string) (*model.User, error) {
	// Формируем запрос
	query := repository.Psql.Select(colID, colUsername, colBalance, colLastDailyBonus, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id})
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		user    model.User
		balance int64
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Username, &balance, &user.LastDailyBonus, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}

	user.Balance = int(balance)
	return &user, nil
}

// AddBalance - прибавляет delta к балансу и возвращает новый баланс.
// Отрицательный итог отклоняется ограничением CHECK в БД
func (r *repo) AddBalance(ctx context.Context, id int64, delta int) (int, error) {
	// Формируем запрос
	query := repository.Psql.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", int64(delta))).
		Where(sq.Eq{colID: id}).
		Suffix("RETURNING " + colBalance)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrUserNotFound
		}
		return 0, err
	}

	return int(balance), nil
}

// SetLastDailyBonus - запоминает время получения ежедневного бонуса
func (r *repo) SetLastDailyBonus(ctx context.Context, id int64, at time.Time) error {
	query := repository.Psql.Update(table).
		Set(colLastDailyBonus, at).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CountUsers - количество зарегистрированных пользователей
func (r *repo) CountUsers(ctx context.Context) (int, error) {
	sqlStr, args, err := repository.Psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
