package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrBeerNotFound is returned when a beer is not found in the repository.
	ErrBeerNotFound = errors.New("beer not found")
	// ErrUserNotFound is returned when a user is not found in the repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatedValueUnique is returned when a write would break a unique constraint.
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
