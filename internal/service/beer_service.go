package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/beerstock/internal/models"
	"github.com/rogerio-castellano/beerstock/internal/repo"
	"go.uber.org/zap"
)

type BeerService interface {
	Create(ctx context.Context, beer models.Beer) (models.Beer, error)
	FindByName(ctx context.Context, name string) (models.Beer, error)
	FindByID(ctx context.Context, id int64) (models.Beer, error)
	ListAll(ctx context.Context) ([]models.Beer, error)
	DeleteByID(ctx context.Context, id int64) error
	Increment(ctx context.Context, id int64, quantity int) (models.Beer, error)
	Decrement(ctx context.Context, id int64, quantity int) (models.Beer, error)
}

type beerService struct {
	beerRepo repo.BeerRepository
	logger   *zap.Logger
}

func NewBeerService(beerRepo repo.BeerRepository, logger *zap.Logger) BeerService {
	return &beerService{
		beerRepo: beerRepo,
		logger:   logger,
	}
}

func (s *beerService) Create(ctx context.Context, beer models.Beer) (models.Beer, error) {
	_, err := s.beerRepo.GetByName(ctx, beer.Name)
	if err == nil {
		s.logger.Warn("beer already registered", zap.String("name", beer.Name))
		return models.Beer{}, &alreadyRegisteredError{name: beer.Name}
	}
	if !errors.Is(err, repo.ErrBeerNotFound) {
		s.logger.Error("error checking beer name", zap.Error(err))
		return models.Beer{}, fmt.Errorf("error checking beer name: %w", err)
	}

	beer.ID = 0
	created, err := s.beerRepo.Create(ctx, beer)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			s.logger.Warn("beer already registered", zap.String("name", beer.Name))
			return models.Beer{}, &alreadyRegisteredError{name: beer.Name}
		}
		s.logger.Error("create error", zap.Error(err))
		return models.Beer{}, fmt.Errorf("error creating beer: %w", err)
	}

	s.logger.Info("beer created", zap.Int64("beer_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *beerService) FindByName(ctx context.Context, name string) (models.Beer, error) {
	beer, err := s.beerRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrBeerNotFound) {
			return models.Beer{}, &notFoundError{field: "name", value: name}
		}
		s.logger.Error("error getting beer by name", zap.Error(err))
		return models.Beer{}, fmt.Errorf("error getting beer by name: %w", err)
	}
	return beer, nil
}

func (s *beerService) FindByID(ctx context.Context, id int64) (models.Beer, error) {
	beer, err := s.beerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrBeerNotFound) {
			return models.Beer{}, &notFoundError{field: "id", value: id}
		}
		s.logger.Error("error getting beer by id", zap.Error(err))
		return models.Beer{}, fmt.Errorf("error getting beer by id: %w", err)
	}
	return beer, nil
}

func (s *beerService) ListAll(ctx context.Context) ([]models.Beer, error) {
	beers, err := s.beerRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("list error", zap.Error(err))
		return nil, fmt.Errorf("error listing beers: %w", err)
	}
	if beers == nil {
		beers = []models.Beer{}
	}
	return beers, nil
}

func (s *beerService) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.beerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrBeerNotFound) {
			return &notFoundError{field: "id", value: id}
		}
		s.logger.Error("error deleting beer", zap.Error(err))
		return fmt.Errorf("error deleting beer: %w", err)
	}

	s.logger.Info("beer deleted", zap.Int64("beer_id", id))
	return nil
}

func (s *beerService) Increment(ctx context.Context, id int64, quantity int) (models.Beer, error) {
	if quantity <= 0 {
		return models.Beer{}, &invalidQuantityError{op: "increment", quantity: quantity}
	}

	beer, err := s.FindByID(ctx, id)
	if err != nil {
		return models.Beer{}, err
	}

	// compared against the free room so that a huge quantity cannot overflow
	if quantity > beer.Max-beer.Quantity {
		s.logger.Warn("stock exceeded",
			zap.Int64("beer_id", id),
			zap.Int("quantity", quantity),
			zap.Int("max", beer.Max),
		)
		return models.Beer{}, &StockExceededError{ID: id, Quantity: quantity, Max: beer.Max}
	}

	return s.saveQuantity(ctx, beer, beer.Quantity+quantity)
}

func (s *beerService) Decrement(ctx context.Context, id int64, quantity int) (models.Beer, error) {
	if quantity <= 0 {
		return models.Beer{}, &invalidQuantityError{op: "decrement", quantity: quantity}
	}

	beer, err := s.FindByID(ctx, id)
	if err != nil {
		return models.Beer{}, err
	}

	if quantity > beer.Quantity {
		s.logger.Warn("insufficient stock",
			zap.Int64("beer_id", id),
			zap.Int("quantity", quantity),
			zap.Int("stock", beer.Quantity),
		)
		return models.Beer{}, &StockInsufficientError{ID: id, Quantity: quantity, Stock: beer.Quantity}
	}

	return s.saveQuantity(ctx, beer, beer.Quantity-quantity)
}

func (s *beerService) saveQuantity(ctx context.Context, beer models.Beer, quantity int) (models.Beer, error) {
	beer.Quantity = quantity
	updated, err := s.beerRepo.Update(ctx, beer)
	if err != nil {
		if errors.Is(err, repo.ErrBeerNotFound) {
			return models.Beer{}, &notFoundError{field: "id", value: beer.ID}
		}
		s.logger.Error("error updating stock", zap.Int64("beer_id", beer.ID), zap.Error(err))
		return models.Beer{}, fmt.Errorf("error updating stock: %w", err)
	}
	return updated, nil
}
