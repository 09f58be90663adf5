package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/infras/otel/mocks"
	"innkeeper/internal/domains/hotel/model"
	"innkeeper/internal/domains/hotel/repository"
	"innkeeper/shared/failure"
)

func buildHotel(t *testing.T, name string) *model.Hotel {
	t.Helper()

	hotel, err := model.NewHotel(name, 2, 1, 0)
	require.NoError(t, err)

	return hotel
}

func TestDirectory_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	dir := repository.New(mocks.NewOtel())

	hotel := buildHotel(t, "Plaza")
	require.NoError(t, dir.Insert(ctx, hotel))

	got, err := dir.Get(ctx, "Plaza")
	require.NoError(t, err)
	assert.Same(t, hotel, got)

	assert.True(t, dir.Exist(ctx, "Plaza"))
	assert.False(t, dir.Exist(ctx, "Ritz"))
}

func TestDirectory_DuplicateNameRejected(t *testing.T) {
	ctx := context.Background()
	dir := repository.New(mocks.NewOtel())

	require.NoError(t, dir.Insert(ctx, buildHotel(t, "Plaza")))

	err := dir.Insert(ctx, buildHotel(t, "Plaza"))
	assert.Equal(t, 409, failure.GetCode(err))
	assert.Len(t, dir.GetAll(ctx), 1)
}

func TestDirectory_GetAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	dir := repository.New(mocks.NewOtel())

	for _, name := range []string{"Plaza", "Ritz", "Savoy"} {
		require.NoError(t, dir.Insert(ctx, buildHotel(t, name)))
	}

	hotels := dir.GetAll(ctx)
	require.Len(t, hotels, 3)
	assert.Equal(t, "Plaza", hotels[0].Name)
	assert.Equal(t, "Ritz", hotels[1].Name)
	assert.Equal(t, "Savoy", hotels[2].Name)
}

func TestDirectory_Delete(t *testing.T) {
	ctx := context.Background()
	dir := repository.New(mocks.NewOtel())

	require.NoError(t, dir.Insert(ctx, buildHotel(t, "Plaza")))
	require.NoError(t, dir.Delete(ctx, "Plaza"))

	assert.False(t, dir.Exist(ctx, "Plaza"))
	assert.Empty(t, dir.GetAll(ctx))

	err := dir.Delete(ctx, "Plaza")
	assert.Equal(t, 404, failure.GetCode(err))

	_, err = dir.Get(ctx, "Plaza")
	assert.Equal(t, 404, failure.GetCode(err))
}
