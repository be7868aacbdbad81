package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/beerstock/internal/models"
)

type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

type MovementRepository interface {
	Log(ctx context.Context, beerID int64, delta int) error
	GetByBeerID(ctx context.Context, beerID int64, mf MovementFilter) ([]models.Movement, int, error)
	DeleteByBeerID(ctx context.Context, beerID int64) error
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
