package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanvir/campushub/internal/pkg/query"
)

// collectList executes a composed list query plus its count query and
// returns document-style rows keyed by API field name. The projection is
// request-driven, so rows are collected dynamically instead of scanned
// into a fixed struct.
func collectList(ctx context.Context, db *pgxpool.Pool, b *query.Builder) ([]map[string]interface{}, query.Meta, error) {
	listSQL, listArgs, err := b.Build()
	if err != nil {
		return nil, query.Meta{}, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, query.Meta{}, fmt.Errorf("failed to execute list query: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, query.Meta{}, fmt.Errorf("failed to collect list rows: %w", err)
	}

	countSQL, countArgs, err := b.BuildCount()
	if err != nil {
		return nil, query.Meta{}, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, query.Meta{}, fmt.Errorf("failed to execute count query: %w", err)
	}

	return items, b.Meta(total), nil
}
