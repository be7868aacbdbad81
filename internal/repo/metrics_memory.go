package repo

import "context"

type InMemoryMetricsRepository struct {
	beerRepo     BeerRepository
	movementRepo MovementRepository
}

func NewInMemoryMetricsRepository(beerRepo BeerRepository, movementRepo MovementRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{
		beerRepo:     beerRepo,
		movementRepo: movementRepo,
	}
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	m := Metrics{}

	beers, err := i.beerRepo.GetAll(ctx)
	if err != nil {
		return m, err
	}
	m.TotalBeers = len(beers)

	for _, beer := range beers {
		_, count, err := i.movementRepo.GetByBeerID(ctx, beer.ID, MovementFilter{})
		if err != nil {
			return m, err
		}
		m.TotalMovements += count
		if count > m.MostMovedBeer.MovementCount {
			m.MostMovedBeer = MostMovedBeer{Name: beer.Name, MovementCount: count}
		}

		if beer.Quantity == 0 {
			m.OutOfStock++
		}
		if beer.Quantity == beer.Max {
			m.AtCapacity++
		}
	}

	return m, nil
}
