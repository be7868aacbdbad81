package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/beerstock/internal/models"
)

const queryTimeout = 3 * time.Second

type PostgresBeerRepository struct {
	db *sql.DB
}

func NewPostgresBeerRepository(db *sql.DB) *PostgresBeerRepository {
	return &PostgresBeerRepository{db: db}
}

func (r *PostgresBeerRepository) Create(ctx context.Context, b models.Beer) (models.Beer, error) {
	query := `INSERT INTO beers (name, brand, max, quantity, type) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, b.Name, b.Brand, b.Max, b.Quantity, string(b.Type)).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Beer{}, ErrDuplicatedValueUnique
		}
		return models.Beer{}, fmt.Errorf("failed to insert beer: %w", err)
	}
	return b, nil
}

func (r *PostgresBeerRepository) GetAll(ctx context.Context) ([]models.Beer, error) {
	query := `SELECT id, name, brand, max, quantity, type FROM beers ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list beers: %w", err)
	}
	defer rows.Close()

	beers := []models.Beer{}
	for rows.Next() {
		b, err := scanBeer(rows)
		if err != nil {
			return nil, err
		}
		beers = append(beers, b)
	}
	return beers, rows.Err()
}

func (r *PostgresBeerRepository) GetByID(ctx context.Context, id int64) (models.Beer, error) {
	query := `SELECT id, name, brand, max, quantity, type FROM beers WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.getOne(ctx, query, id)
}

func (r *PostgresBeerRepository) GetByName(ctx context.Context, name string) (models.Beer, error) {
	query := `SELECT id, name, brand, max, quantity, type FROM beers WHERE name = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.getOne(ctx, query, name)
}

func (r *PostgresBeerRepository) getOne(ctx context.Context, query string, arg any) (models.Beer, error) {
	b, err := scanBeer(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Beer{}, ErrBeerNotFound
	}
	return b, err
}

// Update only writes quantity: the remaining columns are immutable after creation.
func (r *PostgresBeerRepository) Update(ctx context.Context, b models.Beer) (models.Beer, error) {
	query := `UPDATE beers SET quantity = $1, updated_at = $2 WHERE id = $3`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, b.Quantity, time.Now().UTC(), b.ID)
	if err != nil {
		return models.Beer{}, fmt.Errorf("failed to update beer %d: %w", b.ID, err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Beer{}, ErrBeerNotFound
	}
	return b, nil
}

func (r *PostgresBeerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM beers WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete beer %d: %w", id, err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrBeerNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBeer(row rowScanner) (models.Beer, error) {
	var b models.Beer
	var beerType string
	if err := row.Scan(&b.ID, &b.Name, &b.Brand, &b.Max, &b.Quantity, &beerType); err != nil {
		return models.Beer{}, err
	}
	b.Type = models.BeerType(beerType)
	return b, nil
}
