package inventory_repo

import (
	"context"
	"errors"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "inventory"
	colID        = "id"
	colUserID    = "user_id"
	colItemName  = "item_name"
	colItemValue = "item_value"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewInventoryRepository(dbc *pgxpool.Pool) repository.InventoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AddItem - кладет выигранный предмет в инвентарь
func (r *repo) AddItem(ctx context.Context, item *model.InventoryItem) (int64, error) {
	query := repository.Psql.Insert(table).
		Columns(colUserID, colItemName, colItemValue).
		Values(item.UserID, item.ItemName, item.ItemValue).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ListItems - инвентарь пользователя, новые предметы первыми
func (r *repo) ListItems(ctx context.Context, userID int64) ([]model.InventoryItem, error) {
	query := repository.Psql.Select(colID, colUserID, colItemName, colItemValue, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.InventoryItem, 0)
	for rows.Next() {
		var it model.InventoryItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ItemName, &it.ItemValue, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// TakeItem - удаляет один предмет из инвентаря и возвращает его
func (r *repo) TakeItem(ctx context.Context, userID, itemID int64, name string) (*model.InventoryItem, error) {
	sqlStr, args, err := takeItemQuery(userID, itemID, name)
	if err != nil {
		return nil, err
	}

	var it model.InventoryItem
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&it.ID, &it.UserID, &it.ItemName, &it.ItemValue, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrItemNotFound
		}
		return nil, err
	}

	return &it, nil
}

func takeItemQuery(userID, itemID int64, name string) (string, []any, error) {
	// Подзапрос выбирает ровно одну строку. Плейсхолдеры "?" пронумерует внешний запрос
	sub := sq.Select(colID).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt, colID).
		Limit(1).
		Suffix("FOR UPDATE")
	if itemID != 0 {
		sub = sub.Where(sq.Eq{colID: itemID})
	} else {
		sub = sub.Where(sq.Eq{colItemName: name})
	}

	subSQL, subArgs, err := sub.ToSql()
	if err != nil {
		return "", nil, err
	}

	return repository.Psql.Delete(table).
		Where(sq.Expr(colID+" = ("+subSQL+")", subArgs...)).
		Suffix("RETURNING " + colID + ", " + colUserID + ", " + colItemName + ", " + colItemValue + ", " + colCreatedAt).
		ToSql()
}
