package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/beerstock/internal/models"
)

// InMemoryBeerRepository is an in-memory implementation of BeerRepository.
type InMemoryBeerRepository struct {
	mu     sync.RWMutex
	beers  []models.Beer
	nextID int64
}

// NewInMemoryBeerRepository creates a new instance of InMemoryBeerRepository.
func NewInMemoryBeerRepository() *InMemoryBeerRepository {
	return &InMemoryBeerRepository{
		beers:  []models.Beer{},
		nextID: 1,
	}
}

// Create adds a new beer to the repository and assigns its ID.
func (r *InMemoryBeerRepository) Create(_ context.Context, beer models.Beer) (models.Beer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.beers {
		if b.Name == beer.Name {
			return models.Beer{}, ErrDuplicatedValueUnique
		}
	}

	beer.ID = r.nextID
	r.nextID++
	r.beers = append(r.beers, beer)
	return beer, nil
}

// GetAll retrieves all beers ordered by ID.
func (r *InMemoryBeerRepository) GetAll(_ context.Context) ([]models.Beer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	beers := make([]models.Beer, len(r.beers))
	copy(beers, r.beers)
	return beers, nil
}

// GetByID retrieves a beer by its ID.
func (r *InMemoryBeerRepository) GetByID(_ context.Context, id int64) (models.Beer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.beers {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Beer{}, ErrBeerNotFound
}

// GetByName retrieves a beer by its exact name.
func (r *InMemoryBeerRepository) GetByName(_ context.Context, name string) (models.Beer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.beers {
		if b.Name == name {
			return b, nil
		}
	}
	return models.Beer{}, ErrBeerNotFound
}

// Update replaces a stored beer.
func (r *InMemoryBeerRepository) Update(_ context.Context, beer models.Beer) (models.Beer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.beers {
		if b.ID == beer.ID {
			r.beers[i] = beer
			return beer, nil
		}
	}
	return models.Beer{}, ErrBeerNotFound
}

// Delete removes a beer from the repository by its ID.
func (r *InMemoryBeerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.beers {
		if b.ID == id {
			r.beers = append(r.beers[:i], r.beers[i+1:]...)
			return nil
		}
	}
	return ErrBeerNotFound
}
