package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/internal/domains/hotel/model"
	"innkeeper/shared/failure"
)

func pricedHotel(t *testing.T, nightly float64) *model.Hotel {
	t.Helper()

	hotel := newHotel(t, 2, 0, 0)
	require.NoError(t, hotel.UpdatePrice(nightly))

	return hotel
}

func TestReservation_Validity(t *testing.T) {
	room := model.NewRoom("S1", model.TierStandard, 1000)

	valid := model.NewReservation("Ada", 5, 10, room, "")
	assert.True(t, valid.Valid)

	inverted := model.NewReservation("Ada", 10, 5, room, "")
	assert.False(t, inverted.Valid)
	assert.Zero(t, inverted.TotalPrice)

	sameDay := model.NewReservation("Ada", 7, 7, room, "")
	assert.True(t, sameDay.Valid)
}

func TestReservation_ProvisionalPriceMatchesNeutralCalendar(t *testing.T) {
	room := model.NewRoom("S1", model.TierStandard, 1000)

	reservation := model.NewReservation("Ada", 1, 4, room, "")
	assert.InDelta(t, 4000.0, reservation.TotalPrice, 1e-9)

	// Repricing with an all-neutral calendar does not change the figure.
	assert.InDelta(t, 4000.0, reservation.PriceTotal(model.NewRateCalendar()), 1e-9)
}

func TestReserve_DiscountScenarios(t *testing.T) {
	tests := []struct {
		name        string
		checkIn     int
		checkOut    int
		code        string
		expected    float64
	}{
		{
			name:     "no code",
			checkIn:  1,
			checkOut: 5,
			expected: 5000,
		},
		{
			name:     "employee discount",
			checkIn:  1,
			checkOut: 5,
			code:     model.DiscountCodeEmployee,
			expected: 5000 * 0.90,
		},
		{
			name:     "long stay gets first night free",
			checkIn:  1,
			checkOut: 5,
			code:     model.DiscountCodeLongStay,
			expected: 5000 - 1000,
		},
		{
			name:     "long stay too short for the code",
			checkIn:  1,
			checkOut: 4,
			code:     model.DiscountCodeLongStay,
			expected: 4000,
		},
		{
			name:     "payday covering day 15",
			checkIn:  10,
			checkOut: 20,
			code:     model.DiscountCodePayday,
			expected: 11000 * 0.93,
		},
		{
			name:     "payday excludes the check-out day",
			checkIn:  10,
			checkOut: 15,
			code:     model.DiscountCodePayday,
			expected: 6000,
		},
		{
			name:     "payday covering day 30",
			checkIn:  29,
			checkOut: 31,
			code:     model.DiscountCodePayday,
			expected: 3000 * 0.93,
		},
		{
			name:     "unknown code is ignored",
			checkIn:  1,
			checkOut: 3,
			code:     "FREE_STUFF",
			expected: 3000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hotel := pricedHotel(t, 1000)

			view, err := hotel.Reserve("Ada", tt.checkIn, tt.checkOut, "S1", tt.code)
			require.NoError(t, err)

			assert.InDelta(t, tt.expected, view.TotalPrice, 1e-9)
		})
	}
}

func TestReserve_DayModifierPricing(t *testing.T) {
	t.Run("modifier applies after the 1.5 normalization", func(t *testing.T) {
		hotel := pricedHotel(t, 1000)
		require.NoError(t, hotel.SetDayRate(1, 1.2))

		view, err := hotel.Reserve("Ada", 1, 1, "S1", "")
		require.NoError(t, err)

		assert.InDelta(t, 1000/1.5*1.2, view.TotalPrice, 1e-9)
	})

	t.Run("normalization carries into the following days", func(t *testing.T) {
		hotel := pricedHotel(t, 1000)
		require.NoError(t, hotel.SetDayRate(1, 1.2))

		view, err := hotel.Reserve("Ada", 1, 2, "S1", "")
		require.NoError(t, err)

		nightly := 1000 / 1.5
		assert.InDelta(t, nightly*1.2+nightly, view.TotalPrice, 1e-9)
	})

	t.Run("neutral days are untouched", func(t *testing.T) {
		hotel := pricedHotel(t, 1000)
		require.NoError(t, hotel.SetDayRate(20, 0.8))

		view, err := hotel.Reserve("Ada", 1, 3, "S1", "")
		require.NoError(t, err)

		assert.InDelta(t, 3000.0, view.TotalPrice, 1e-9)
	})
}

func TestReservation_PricePerNight(t *testing.T) {
	room := model.NewRoom("S1", model.TierStandard, 1000)

	reservation := model.NewReservation("Ada", 1, 5, room, "")
	perNight, err := reservation.PricePerNight()
	require.NoError(t, err)
	assert.InDelta(t, 5000.0/4, perNight, 1e-9)

	sameDay := model.NewReservation("Ada", 7, 7, room, "")
	_, err = sameDay.PricePerNight()
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestReservation_CoversDay(t *testing.T) {
	room := model.NewRoom("S1", model.TierStandard, 1000)
	reservation := model.NewReservation("Ada", 5, 10, room, "")

	assert.True(t, reservation.CoversDay(5))
	assert.True(t, reservation.CoversDay(10))
	assert.False(t, reservation.CoversDay(4))
	assert.False(t, reservation.CoversDay(11))
}

func TestRoom_BookedOnDay(t *testing.T) {
	roomA := model.NewRoom("S1", model.TierStandard, 1000)
	roomB := model.NewRoom("S2", model.TierStandard, 1000)

	reservations := []*model.Reservation{
		model.NewReservation("Ada", 5, 7, roomA, ""),
	}

	assert.True(t, roomA.BookedOnDay(5, reservations))
	assert.True(t, roomA.BookedOnDay(7, reservations))
	assert.False(t, roomA.BookedOnDay(8, reservations))
	assert.False(t, roomB.BookedOnDay(5, reservations))
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		input    string
		expected model.Tier
		wantErr  bool
	}{
		{input: "standard", expected: model.TierStandard},
		{input: "Deluxe", expected: model.TierDeluxe},
		{input: "EXECUTIVE", expected: model.TierExecutive},
		{input: "suite", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("parse "+tt.input, func(t *testing.T) {
			tier, err := model.ParseTier(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, tier)
		})
	}
}
