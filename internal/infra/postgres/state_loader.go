package postgres

import (
	"context"
	"fmt"

	"abbrev-quiz/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// StateLoader loads the reference table from Postgres.
type StateLoader struct {
	pool *pgxpool.Pool
}

func NewStateLoader(pool *pgxpool.Pool) *StateLoader {
	return &StateLoader{pool: pool}
}

func (l *StateLoader) LoadStates(ctx context.Context) ([]domain.StateRecord, error) {
	rows, err := l.pool.Query(ctx, `SELECT name, abbr FROM states ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load states: %w", err)
	}
	defer rows.Close()

	var states []domain.StateRecord
	for rows.Next() {
		var rec domain.StateRecord
		if err := rows.Scan(&rec.State, &rec.Abbr); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		states = append(states, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load states: %w", err)
	}
	return states, nil
}
