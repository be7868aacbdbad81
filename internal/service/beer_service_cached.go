package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/beerstock/internal/models"
	"go.uber.org/zap"
)

type cachedBeerService struct {
	next        BeerService
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewCachedBeerService reads beers through redis and drops cached entries
// whenever a beer's stock changes or the beer is deleted.
func NewCachedBeerService(next BeerService, redisClient *redis.Client, cacheTTL time.Duration, logger *zap.Logger) BeerService {
	return &cachedBeerService{
		next:        next,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

func nameKey(name string) string { return "beer:name:" + name }

func idKey(id int64) string { return fmt.Sprintf("beer:id:%d", id) }

func (s *cachedBeerService) Create(ctx context.Context, beer models.Beer) (models.Beer, error) {
	return s.next.Create(ctx, beer)
}

func (s *cachedBeerService) FindByName(ctx context.Context, name string) (models.Beer, error) {
	if beer, ok := s.get(ctx, nameKey(name)); ok {
		return beer, nil
	}

	beer, err := s.next.FindByName(ctx, name)
	if err != nil {
		return models.Beer{}, err
	}

	s.set(ctx, beer)
	return beer, nil
}

func (s *cachedBeerService) FindByID(ctx context.Context, id int64) (models.Beer, error) {
	if beer, ok := s.get(ctx, idKey(id)); ok {
		return beer, nil
	}

	beer, err := s.next.FindByID(ctx, id)
	if err != nil {
		return models.Beer{}, err
	}

	s.set(ctx, beer)
	return beer, nil
}

func (s *cachedBeerService) ListAll(ctx context.Context) ([]models.Beer, error) {
	return s.next.ListAll(ctx)
}

func (s *cachedBeerService) DeleteByID(ctx context.Context, id int64) error {
	beer, findErr := s.next.FindByID(ctx, id)

	if err := s.next.DeleteByID(ctx, id); err != nil {
		return err
	}

	if findErr == nil {
		s.invalidate(ctx, beer)
	} else {
		s.del(ctx, idKey(id))
	}
	return nil
}

func (s *cachedBeerService) Increment(ctx context.Context, id int64, quantity int) (models.Beer, error) {
	beer, err := s.next.Increment(ctx, id, quantity)
	if err != nil {
		return models.Beer{}, err
	}

	s.invalidate(ctx, beer)
	return beer, nil
}

func (s *cachedBeerService) Decrement(ctx context.Context, id int64, quantity int) (models.Beer, error) {
	beer, err := s.next.Decrement(ctx, id, quantity)
	if err != nil {
		return models.Beer{}, err
	}

	s.invalidate(ctx, beer)
	return beer, nil
}

func (s *cachedBeerService) get(ctx context.Context, key string) (models.Beer, bool) {
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return models.Beer{}, false
	}

	var beer models.Beer
	if err := json.Unmarshal(val, &beer); err != nil {
		s.logger.Warn("cache entry corrupted", zap.String("key", key), zap.Error(err))
		s.del(ctx, key)
		return models.Beer{}, false
	}
	return beer, true
}

func (s *cachedBeerService) set(ctx context.Context, beer models.Beer) {
	data, err := json.Marshal(beer)
	if err != nil {
		return
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, nameKey(beer.Name), data, s.cacheTTL)
	pipe.Set(ctx, idKey(beer.ID), data, s.cacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("cache write failed", zap.Int64("beer_id", beer.ID), zap.Error(err))
	}
}

func (s *cachedBeerService) invalidate(ctx context.Context, beer models.Beer) {
	s.del(ctx, nameKey(beer.Name), idKey(beer.ID))
}

func (s *cachedBeerService) del(ctx context.Context, keys ...string) {
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
