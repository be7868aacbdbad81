package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/beerstock/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.RWMutex
	movements []models.Movement
	nextID    int64
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

// AddMovement stores a movement with an explicit timestamp. Used to seed history.
func (r *InMemoryMovementRepository) AddMovement(beerID int64, delta int, createdAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.movements = append(r.movements, models.Movement{
		ID:        r.nextID,
		BeerID:    beerID,
		Delta:     delta,
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
	})
}

// Log inserts a new stock movement
func (r *InMemoryMovementRepository) Log(_ context.Context, beerID int64, delta int) error {
	r.AddMovement(beerID, delta, time.Now())
	return nil
}

// DeleteByBeerID drops the history of a beer, matching the cascade of the movements table
func (r *InMemoryMovementRepository) DeleteByBeerID(_ context.Context, beerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.movements[:0]
	for _, m := range r.movements {
		if m.BeerID != beerID {
			kept = append(kept, m)
		}
	}
	r.movements = kept
	return nil
}

// GetByBeerID returns the movements of a beer, optionally filtered by date range and paginated
func (r *InMemoryMovementRepository) GetByBeerID(_ context.Context, beerID int64, mf MovementFilter) ([]models.Movement, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Movement{}
	for _, m := range r.movements {
		if m.BeerID != beerID {
			continue
		}
		ts, err := time.Parse(time.RFC3339, m.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		if (mf.Since != nil && ts.Before(*mf.Since)) || (mf.Until != nil && ts.After(*mf.Until)) {
			continue
		}
		filtered = append(filtered, m)
	}

	total := len(filtered)
	if mf.Offset != nil && *mf.Offset > total {
		return []models.Movement{}, total, nil
	}

	start := 0
	if mf.Offset != nil {
		start = clamp(*mf.Offset, 0, total)
	}

	end := total
	if mf.Limit != nil && *mf.Limit > 0 {
		end = clamp(start+*mf.Limit, start, total)
	}

	return filtered[start:end], total, nil
}
