package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/emergency-supply/internal/model"
	"github.com/you-humble/emergency-supply/internal/service/mocks"
)

func newFakeSupply() *model.Supply {
	now := time.Now().UTC().Truncate(time.Second)
	return &model.Supply{
		ID:             gofakeit.UUID(),
		SupplyName:     gofakeit.ProductName(),
		Category:       gofakeit.ProductCategory(),
		UnitPrice:      gofakeit.Price(0, 100),
		Quantity:       int64(gofakeit.Number(0, 1000)),
		ExpirationDate: lo.ToPtr("2031-01-01"),
		Supplier:       gofakeit.Company(),
		Location:       gofakeit.City(),
		CreatedAt:      &now,
		UpdatedAt:      &now,
	}
}

func newCache(t *testing.T) (*repository, *mocks.MockSupplyRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	next := mocks.NewMockSupplyRepository(t)
	return NewSupplyRepository(next, client, time.Minute), next, mr
}

func TestFindByNameReadThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, next, mr := newCache(t)
	want := newFakeSupply()

	next.On("FindByName", mock.Anything, want.SupplyName).Return(want, nil).Once()

	got, err := repo.FindByName(ctx, want.SupplyName)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, mr.Exists(keyPrefix+want.SupplyName))

	// served from redis; the mock allows a single call only
	cached, err := repo.FindByName(ctx, want.SupplyName)
	require.NoError(t, err)
	assert.Equal(t, want.Quantity, cached.Quantity)
	assert.Equal(t, want.ExpirationDate, cached.ExpirationDate)
	assert.True(t, want.CreatedAt.Equal(*cached.CreatedAt))
}

func TestFindByNameDoesNotCacheMisses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, next, mr := newCache(t)

	next.On("FindByName", mock.Anything, "ghost").Return((*model.Supply)(nil), model.ErrSupplyNotFound).Twice()

	for range 2 {
		_, err := repo.FindByName(ctx, "ghost")
		assert.ErrorIs(t, err, model.ErrSupplyNotFound)
	}
	assert.False(t, mr.Exists(keyPrefix+"ghost"))
}

func TestWritesInvalidateEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, next, mr := newCache(t)
	s := newFakeSupply()

	next.On("FindByName", mock.Anything, s.SupplyName).Return(s, nil).Once()
	_, err := repo.FindByName(ctx, s.SupplyName)
	require.NoError(t, err)
	require.True(t, mr.Exists(keyPrefix+s.SupplyName))

	renamed := *s
	renamed.SupplyName = "Renamed " + s.SupplyName
	patch := model.SupplyPatch{SupplyName: lo.ToPtr(renamed.SupplyName)}

	next.On("UpdateByName", mock.Anything, s.SupplyName, patch).Return(&renamed, nil).Once()
	_, err = repo.UpdateByName(ctx, s.SupplyName, patch)
	require.NoError(t, err)
	assert.False(t, mr.Exists(keyPrefix+s.SupplyName))

	next.On("FindByName", mock.Anything, renamed.SupplyName).Return(&renamed, nil).Once()
	_, err = repo.FindByName(ctx, renamed.SupplyName)
	require.NoError(t, err)
	require.True(t, mr.Exists(keyPrefix+renamed.SupplyName))

	next.On("DeleteByName", mock.Anything, renamed.SupplyName).Return(&renamed, nil).Once()
	_, err = repo.DeleteByName(ctx, renamed.SupplyName)
	require.NoError(t, err)
	assert.False(t, mr.Exists(keyPrefix+renamed.SupplyName))
}

func TestFailedWritesKeepEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, next, mr := newCache(t)
	s := newFakeSupply()

	next.On("FindByName", mock.Anything, s.SupplyName).Return(s, nil).Once()
	_, err := repo.FindByName(ctx, s.SupplyName)
	require.NoError(t, err)

	next.On("DeleteByName", mock.Anything, s.SupplyName).
		Return((*model.Supply)(nil), assert.AnError).
		Once()
	_, err = repo.DeleteByName(ctx, s.SupplyName)
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, mr.Exists(keyPrefix+s.SupplyName))
}

func TestRedisOutageFallsThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, next, mr := newCache(t)
	s := newFakeSupply()
	mr.Close()

	next.On("FindByName", mock.Anything, s.SupplyName).Return(s, nil).Once()
	next.On("FindAll", mock.Anything).Return([]*model.Supply{s}, nil).Once()
	next.On("Insert", mock.Anything, s).Return(s, nil).Once()

	got, err := repo.FindByName(ctx, s.SupplyName)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.Insert(ctx, s)
	require.NoError(t, err)
}
