package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	qb "github.com/riskibarqy/match-ingestion/internal/platform/querybuilder"
)

const uniqueViolationCode = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

// insertRows writes every row with one multi-row insert. Empty input is a no-op.
func insertRows[T any](ctx context.Context, ext sqlx.ExtContext, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	query, args, err := qb.InsertModels(table, rows, "")
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", table, err)
	}
	if _, err := ext.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// insertRowsReturningKeys runs a multi-row insert whose suffix returns (id, key) and maps key to id.
func insertRowsReturningKeys[T any](ctx context.Context, ext sqlx.ExtContext, table string, rows []T, suffix string) (map[int]int64, error) {
	out := make(map[int]int64, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	query, args, err := qb.InsertModels(table, rows, suffix)
	if err != nil {
		return nil, fmt.Errorf("build insert %s query: %w", table, err)
	}

	result, err := ext.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", table, err)
	}
	defer result.Close()
	for result.Next() {
		var (
			id  int64
			key int
		)
		if err := result.Scan(&id, &key); err != nil {
			return nil, fmt.Errorf("scan inserted %s: %w", table, err)
		}
		out[key] = id
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("iterate inserted %s: %w", table, err)
	}
	return out, nil
}

func toInt64Array(items []int) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(items))
	for _, item := range items {
		out = append(out, int64(item))
	}
	return out
}
