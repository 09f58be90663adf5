package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/infras/otel/mocks"
	"innkeeper/internal/domains/hotel/model"
	"innkeeper/internal/domains/hotel/repository"
	"innkeeper/internal/domains/reservation/dto"
	"innkeeper/internal/domains/reservation/service"
	"innkeeper/shared/failure"
)

func newService(t *testing.T) service.Reservation {
	t.Helper()

	repo := repository.New(mocks.NewOtel())

	hotel, err := model.NewHotel("Plaza", 2, 0, 0)
	require.NoError(t, err)
	require.NoError(t, hotel.UpdatePrice(1000))
	require.NoError(t, repo.Insert(context.Background(), hotel))

	return service.New(repo, mocks.NewOtel())
}

func reserveRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		GuestName:   "Ada",
		CheckInDay:  5,
		CheckOutDay: 9,
		RoomName:    "S1",
	}
}

func TestReservationService_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("books and prices the stay", func(t *testing.T) {
		svc := newService(t)

		res, err := svc.Reserve(ctx, "Plaza", reserveRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Ada", res.GuestName)
		assert.Equal(t, "S1", res.RoomName)
		assert.InDelta(t, 5000.0, res.TotalPrice, 1e-9)
		require.NotNil(t, res.PricePerNight)
		assert.InDelta(t, 1250.0, *res.PricePerNight, 1e-9)
	})

	t.Run("same-day stay has no per-night price", func(t *testing.T) {
		svc := newService(t)

		req := reserveRequest()
		req.CheckOutDay = req.CheckInDay

		res, err := svc.Reserve(ctx, "Plaza", req)
		require.NoError(t, err)
		assert.Nil(t, res.PricePerNight)
	})

	t.Run("overlapping stay is rejected", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Reserve(ctx, "Plaza", reserveRequest())
		require.NoError(t, err)

		req := reserveRequest()
		req.GuestName = "Grace"
		req.CheckInDay = 9
		req.CheckOutDay = 12

		_, err = svc.Reserve(ctx, "Plaza", req)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unknown hotel", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Reserve(ctx, "Savoy", reserveRequest())
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		svc := newService(t)

		req := reserveRequest()
		req.RoomName = "Z9"

		_, err := svc.Reserve(ctx, "Plaza", req)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReservationService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("matches the identifying fields case-insensitively", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Reserve(ctx, "Plaza", reserveRequest())
		require.NoError(t, err)

		err = svc.Cancel(ctx, "Plaza", dto.CancelReservationRequest{
			GuestName:   "ADA",
			RoomName:    "s1",
			CheckInDay:  5,
			CheckOutDay: 9,
		})
		require.NoError(t, err)

		all, err := svc.GetAll(ctx, "Plaza")
		require.NoError(t, err)
		assert.Zero(t, all.TotalData)
	})

	t.Run("no reservation matches", func(t *testing.T) {
		svc := newService(t)

		err := svc.Cancel(ctx, "Plaza", dto.CancelReservationRequest{
			GuestName:   "Ada",
			RoomName:    "S1",
			CheckInDay:  5,
			CheckOutDay: 9,
		})
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReservationService_GetAllAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	first, err := svc.Reserve(ctx, "Plaza", reserveRequest())
	require.NoError(t, err)

	second := reserveRequest()
	second.GuestName = "Grace"
	second.RoomName = "S2"
	_, err = svc.Reserve(ctx, "Plaza", second)
	require.NoError(t, err)

	all, err := svc.GetAll(ctx, "Plaza")
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalData)
	assert.Equal(t, "Ada", all.Reservations[0].GuestName)
	assert.Equal(t, "Grace", all.Reservations[1].GuestName)

	got, err := svc.Get(ctx, "Plaza", first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = svc.Get(ctx, "Plaza", "missing")
	assert.Equal(t, 404, failure.GetCode(err))
}
