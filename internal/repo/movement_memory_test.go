package repo

import (
	"context"
	"testing"
	"time"

	"github.com/rogerio-castellano/beerstock/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func seedMovements(t *testing.T) *InMemoryMovementRepository {
	t.Helper()
	r := NewInMemoryMovementRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		r.AddMovement(1, i+1, base.Add(time.Duration(i)*24*time.Hour))
	}
	r.AddMovement(2, -3, base)
	return r
}

func TestInMemoryMovementRepository_GetByBeerID(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		filter     MovementFilter
		wantDeltas []int
		wantTotal  int
	}{
		{name: "no filter", wantDeltas: []int{1, 2, 3, 4, 5}, wantTotal: 5},
		{name: "since", filter: MovementFilter{Since: ptr(base.Add(72 * time.Hour))}, wantDeltas: []int{4, 5}, wantTotal: 2},
		{name: "until", filter: MovementFilter{Until: ptr(base.Add(24 * time.Hour))}, wantDeltas: []int{1, 2}, wantTotal: 2},
		{name: "limit", filter: MovementFilter{Limit: ptr(2)}, wantDeltas: []int{1, 2}, wantTotal: 5},
		{name: "offset and limit", filter: MovementFilter{Offset: ptr(3), Limit: ptr(10)}, wantDeltas: []int{4, 5}, wantTotal: 5},
		{name: "offset past end", filter: MovementFilter{Offset: ptr(9)}, wantDeltas: []int{}, wantTotal: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := seedMovements(t)

			got, total, err := r.GetByBeerID(context.Background(), 1, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			deltas := []int{}
			for _, m := range got {
				assert.Equal(t, int64(1), m.BeerID)
				deltas = append(deltas, m.Delta)
			}
			assert.Equal(t, tt.wantDeltas, deltas)
		})
	}
}

func TestInMemoryMovementRepository_Log(t *testing.T) {
	r := NewInMemoryMovementRepository()
	ctx := context.Background()

	require.NoError(t, r.Log(ctx, 7, -2))

	got, total, err := r.GetByBeerID(ctx, 7, MovementFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, -2, got[0].Delta)
	_, err = time.Parse(time.RFC3339, got[0].CreatedAt)
	assert.NoError(t, err)
}

func TestInMemoryMovementRepository_DeleteByBeerID(t *testing.T) {
	r := seedMovements(t)
	ctx := context.Background()

	require.NoError(t, r.DeleteByBeerID(ctx, 1))

	_, total, err := r.GetByBeerID(ctx, 1, MovementFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)

	other, total, err := r.GetByBeerID(ctx, 2, MovementFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, -3, other[0].Delta)

	require.NoError(t, r.Log(ctx, 2, 4))
	all, _, err := r.GetByBeerID(ctx, 2, MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.NotEqual(t, all[0].ID, all[1].ID, "ids stay unique after a delete")
}

func TestInMemoryMetricsRepository(t *testing.T) {
	ctx := context.Background()
	beers := NewInMemoryBeerRepository()
	movements := NewInMemoryMovementRepository()

	empty := sampleBeer("Empty")
	empty.Quantity = 0
	full := sampleBeer("Full")
	full.Quantity = full.Max
	e, err := beers.Create(ctx, empty)
	require.NoError(t, err)
	f, err := beers.Create(ctx, full)
	require.NoError(t, err)

	require.NoError(t, movements.Log(ctx, e.ID, -1))
	require.NoError(t, movements.Log(ctx, f.ID, 3))
	require.NoError(t, movements.Log(ctx, f.ID, 2))

	m, err := NewInMemoryMetricsRepository(beers, movements).GetDashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, m.TotalBeers)
	assert.Equal(t, 3, m.TotalMovements)
	assert.Equal(t, 1, m.OutOfStock)
	assert.Equal(t, 1, m.AtCapacity)
	assert.Equal(t, MostMovedBeer{Name: "Full", MovementCount: 2}, m.MostMovedBeer)
}

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryUserRepository()

	_, err := r.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)

	u, err := r.CreateUser(ctx, userFixture("alice"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = r.CreateUser(ctx, userFixture("alice"))
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)
}

func userFixture(name string) models.User {
	return models.User{Username: name, PasswordHash: "hash", Role: "user"}
}
