package transaction_repo

import (
	"context"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "transactions"
	colUserID      = "user_id"
	colType        = "type"
	colAmount      = "amount"
	colDescription = "description"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransactionRepository(dbc *pgxpool.Pool) repository.TransactionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AddTransaction - пишет строку в журнал движения звёзд
func (r *repo) AddTransaction(ctx context.Context, tx model.Transaction) error {
	query := repository.Psql.Insert(table).
		Columns(colUserID, colType, colAmount, colDescription).
		Values(tx.UserID, string(tx.Type), int64(tx.Amount), tx.Description)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
