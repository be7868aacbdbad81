//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/beerstock/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestCachedBeerService(t *testing.T) {
	ctx := context.Background()
	client := startRedis(t)
	beerRepo := repo.NewInMemoryBeerRepository()
	svc := NewCachedBeerService(NewBeerService(beerRepo, zap.NewNop()), client, time.Minute, zap.NewNop())

	created, err := svc.Create(ctx, newBeer())
	require.NoError(t, err)

	t.Run("read through populates both keys", func(t *testing.T) {
		_, err := svc.FindByName(ctx, created.Name)
		require.NoError(t, err)

		assert.EqualValues(t, 2, client.Exists(ctx, nameKey(created.Name), idKey(created.ID)).Val())
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		stale := created
		stale.Quantity = 0
		_, err := beerRepo.Update(ctx, stale)
		require.NoError(t, err)

		got, err := svc.FindByName(ctx, created.Name)
		require.NoError(t, err)
		assert.Equal(t, created.Quantity, got.Quantity)

		_, err = beerRepo.Update(ctx, created)
		require.NoError(t, err)
	})

	t.Run("increment invalidates", func(t *testing.T) {
		updated, err := svc.Increment(ctx, created.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 15, updated.Quantity)
		assert.Zero(t, client.Exists(ctx, nameKey(created.Name), idKey(created.ID)).Val())

		got, err := svc.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 15, got.Quantity)
	})

	t.Run("failed decrement keeps stock", func(t *testing.T) {
		_, err := svc.Decrement(ctx, created.ID, 16)
		require.ErrorIs(t, err, ErrStockInsufficient)

		got, err := svc.FindByName(ctx, created.Name)
		require.NoError(t, err)
		assert.Equal(t, 15, got.Quantity)
	})

	t.Run("corrupted entry is dropped", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, nameKey(created.Name), "not-json", time.Minute).Err())

		got, err := svc.FindByName(ctx, created.Name)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("delete invalidates", func(t *testing.T) {
		require.NoError(t, svc.DeleteByID(ctx, created.ID))
		assert.Zero(t, client.Exists(ctx, nameKey(created.Name), idKey(created.ID)).Val())

		_, err := svc.FindByName(ctx, created.Name)
		assert.ErrorIs(t, err, ErrBeerNotFound)
	})
}
