package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/beerstock/internal/models"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

// Log inserts a new stock movement
func (r *PostgresMovementRepository) Log(ctx context.Context, beerID int64, delta int) error {
	query := `INSERT INTO movements (beer_id, delta, created_at) VALUES ($1, $2, $3)`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, beerID, delta, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}
	return nil
}

// DeleteByBeerID removes the history of a beer. Deleting the beer row already
// cascades, so this only matters when the history is cleared on its own.
func (r *PostgresMovementRepository) DeleteByBeerID(ctx context.Context, beerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM movements WHERE beer_id = $1`, beerID); err != nil {
		return fmt.Errorf("failed to delete movements: %w", err)
	}
	return nil
}

// GetByBeerID returns a page of movements for a beer together with the total match count
func (r *PostgresMovementRepository) GetByBeerID(ctx context.Context, beerID int64, mf MovementFilter) ([]models.Movement, int, error) {
	if mf.Offset != nil && *mf.Offset < 0 {
		return nil, 0, fmt.Errorf("offset must be non-negative")
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	whereClause, args := buildMovementWhereClause(beerID, mf)

	var total int
	countQuery := "SELECT COUNT(*) FROM movements " + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	if mf.Offset != nil && *mf.Offset >= total {
		return []models.Movement{}, total, nil
	}

	query, queryArgs := buildMovementQuery(whereClause, args, mf)
	rows, err := r.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		var m models.Movement
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.BeerID, &m.Delta, &createdAt); err != nil {
			return nil, 0, err
		}
		m.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return movements, total, nil
}

func buildMovementWhereClause(beerID int64, mf MovementFilter) (string, []any) {
	args := []any{beerID}
	whereClause := "WHERE beer_id = $1"
	argIndex := 2

	if mf.Since != nil {
		whereClause += fmt.Sprintf(" AND created_at >= $%d", argIndex)
		args = append(args, *mf.Since)
		argIndex++
	}
	if mf.Until != nil {
		whereClause += fmt.Sprintf(" AND created_at <= $%d", argIndex)
		args = append(args, *mf.Until)
	}

	return whereClause, args
}

func buildMovementQuery(whereClause string, baseArgs []any, mf MovementFilter) (string, []any) {
	query := fmt.Sprintf("SELECT id, beer_id, delta, created_at FROM movements %s ORDER BY created_at, id", whereClause)
	args := append([]any{}, baseArgs...)
	argIndex := len(baseArgs) + 1

	if mf.Limit != nil && *mf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, *mf.Limit)
		argIndex++
	}

	if mf.Offset != nil && *mf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *mf.Offset)
	}

	return query, args
}
