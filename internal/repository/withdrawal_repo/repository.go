package withdrawal_repo

import (
	"context"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "withdrawals"
	colID        = "id"
	colUserID    = "user_id"
	colUsername  = "username"
	colItemName  = "item_name"
	colItemValue = "item_value"
	colStatus    = "status"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWithdrawalRepository(dbc *pgxpool.Pool) repository.WithdrawalRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateWithdrawal - создает заявку на вывод в статусе pending
func (r *repo) CreateWithdrawal(ctx context.Context, w *model.Withdrawal) (int64, error) {
	query := repository.Psql.Insert(table).
		Columns(colUserID, colUsername, colItemName, colItemValue, colStatus).
		Values(w.UserID, w.Username, w.ItemName, w.ItemValue, string(model.WithdrawalPending)).
		Suffix("RETURNING " + colID + ", " + colCreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return 0, err
	}
	w.Status = model.WithdrawalPending

	return w.ID, nil
}

// ListPending - заявки, ожидающие выдачи, новые первыми
func (r *repo) ListPending(ctx context.Context) ([]model.Withdrawal, error) {
	query := repository.Psql.Select(colID, colUserID, colUsername, colItemName, colItemValue, colStatus, colCreatedAt).
		From(table).
		Where(sq.Eq{colStatus: string(model.WithdrawalPending)}).
		OrderBy(colCreatedAt + " DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Withdrawal, 0)
	for rows.Next() {
		var (
			w      model.Withdrawal
			status string
		)
		if err := rows.Scan(&w.ID, &w.UserID, &w.Username, &w.ItemName, &w.ItemValue, &status, &w.CreatedAt); err != nil {
			return nil, err
		}
		w.Status = model.WithdrawalStatus(status)
		list = append(list, w)
	}

	return list, rows.Err()
}

// CompleteWithdrawal - отмечает заявку выданной
func (r *repo) CompleteWithdrawal(ctx context.Context, id int64) error {
	query := repository.Psql.Update(table).
		Set(colStatus, string(model.WithdrawalCompleted)).
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
		return repository.ErrWithdrawalNotFound
	}

	return nil
}

// CountWithdrawals - общее количество заявок
func (r *repo) CountWithdrawals(ctx context.Context) (int, error) {
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
