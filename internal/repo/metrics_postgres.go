package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var m Metrics

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE quantity = 0),
		       COUNT(*) FILTER (WHERE quantity = max)
		FROM beers
	`).Scan(&m.TotalBeers, &m.OutOfStock, &m.AtCapacity)
	if err != nil {
		return m, fmt.Errorf("failed to count beers: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movements`).Scan(&m.TotalMovements); err != nil {
		return m, fmt.Errorf("failed to count movements: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT b.name, COUNT(*) AS cnt
		FROM movements m
		JOIN beers b ON m.beer_id = b.id
		GROUP BY b.name
		ORDER BY cnt DESC
		LIMIT 1
	`).Scan(&m.MostMovedBeer.Name, &m.MostMovedBeer.MovementCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return m, fmt.Errorf("failed to find most moved beer: %w", err)
	}

	return m, nil
}
