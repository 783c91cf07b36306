package stats_repo

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
	table         = "game_stats"
	colUserID     = "user_id"
	colSpinsCount = "spins_count"
	colTotalWon   = "total_won"
	colLastSpin   = "last_spin"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewStatsRepository(dbc *pgxpool.Pool) repository.StatsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// RecordSpin - увеличивает счетчик спинов и сумму выигрыша.
// Если записи нет, создается новая
func (r *repo) RecordSpin(ctx context.Context, userID int64, won int, at time.Time) error {
	query := repository.Psql.Insert(table).
		Columns(colUserID, colSpinsCount, colTotalWon, colLastSpin).
		Values(userID, 1, int64(won), at).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
			colSpinsCount + " = " + table + "." + colSpinsCount + " + 1, " +
			colTotalWon + " = " + table + "." + colTotalWon + " + EXCLUDED." + colTotalWon + ", " +
			colLastSpin + " = EXCLUDED." + colLastSpin)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetStats - статистика игрока. Если записи нет, возвращаются нули
func (r *repo) GetStats(ctx context.Context, userID int64) (model.UserStats, error) {
	query := repository.Psql.Select(colSpinsCount, colTotalWon, colLastSpin).
		From(table).
		Where(sq.Eq{colUserID: userID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.UserStats{}, err
	}

	var (
		stats    model.UserStats
		totalWon int64
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&stats.SpinsCount, &totalWon, &stats.LastSpin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserStats{}, nil
		}
		return model.UserStats{}, err
	}

	stats.TotalWon = int(totalWon)
	return stats, nil
}
