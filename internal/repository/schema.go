package repository

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// Migrate создает таблицы, если их нет. Запросы идемпотентны
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	if _, err := dbc.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
