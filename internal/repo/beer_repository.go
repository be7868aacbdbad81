package repo

import (
	"context"

	"github.com/rogerio-castellano/beerstock/internal/models"
)

// BeerRepository defines the interface for beer data operations.
type BeerRepository interface {
	Create(ctx context.Context, beer models.Beer) (models.Beer, error)
	GetAll(ctx context.Context) ([]models.Beer, error)
	GetByID(ctx context.Context, id int64) (models.Beer, error)
	GetByName(ctx context.Context, name string) (models.Beer, error)
	Update(ctx context.Context, beer models.Beer) (models.Beer, error)
	Delete(ctx context.Context, id int64) error
}
