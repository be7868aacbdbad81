package repo

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/beerstock/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBeer(name string) models.Beer {
	return models.Beer{Name: name, Brand: "Ambev", Max: 50, Quantity: 10, Type: models.Lager}
}

func TestInMemoryBeerRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryBeerRepository()

	first, err := r.Create(ctx, sampleBeer("Brahma"))
	require.NoError(t, err)
	second, err := r.Create(ctx, sampleBeer("Skol"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	got, err := r.GetByName(ctx, "Skol")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	got.Quantity = 42
	_, err = r.Update(ctx, got)
	require.NoError(t, err)
	got, err = r.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Quantity)

	require.NoError(t, r.Delete(ctx, first.ID))
	_, err = r.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrBeerNotFound)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInMemoryBeerRepository_Errors(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryBeerRepository()

	_, err := r.Create(ctx, sampleBeer("Brahma"))
	require.NoError(t, err)

	_, err = r.Create(ctx, sampleBeer("Brahma"))
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	_, err = r.GetByName(ctx, "brahma")
	assert.ErrorIs(t, err, ErrBeerNotFound, "names match exactly")

	_, err = r.Update(ctx, models.Beer{ID: 99})
	assert.ErrorIs(t, err, ErrBeerNotFound)

	assert.ErrorIs(t, r.Delete(ctx, 99), ErrBeerNotFound)
}

func TestInMemoryBeerRepository_GetAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryBeerRepository()
	_, err := r.Create(ctx, sampleBeer("Brahma"))
	require.NoError(t, err)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	all[0].Quantity = 0

	stored, err := r.GetByName(ctx, "Brahma")
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Quantity)
}
