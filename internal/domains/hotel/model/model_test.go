package model_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/internal/domains/hotel/model"
	"innkeeper/shared/failure"
)

func newHotel(t *testing.T, numStandard, numDeluxe, numExecutive int) *model.Hotel {
	t.Helper()

	hotel, err := model.NewHotel("Test Hotel", numStandard, numDeluxe, numExecutive)
	require.NoError(t, err)

	return hotel
}

func roomNames(rooms []model.Room) []string {
	names := make([]string, len(rooms))
	for i, room := range rooms {
		names[i] = room.Name
	}

	return names
}

func TestNewHotel_Validation(t *testing.T) {
	tests := []struct {
		name                             string
		hotelName                        string
		numStandard, numDeluxe, numExec  int
		wantErr                          bool
	}{
		{name: "valid", hotelName: "Plaza", numStandard: 5, numDeluxe: 3, numExec: 2, wantErr: false},
		{name: "single room", hotelName: "Tiny", numStandard: 1, wantErr: false},
		{name: "full house", hotelName: "Big", numStandard: 50, wantErr: false},
		{name: "no rooms", hotelName: "Empty", wantErr: true},
		{name: "too many rooms", hotelName: "Huge", numStandard: 30, numDeluxe: 21, wantErr: true},
		{name: "blank name", hotelName: "   ", numStandard: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hotel, err := model.NewHotel(tt.hotelName, tt.numStandard, tt.numDeluxe, tt.numExec)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.numStandard+tt.numDeluxe+tt.numExec, hotel.RoomCount())
			assert.Equal(t, model.DefaultBasePrice, hotel.BasePrice())
		})
	}
}

func TestNewHotel_TierPricing(t *testing.T) {
	hotel := newHotel(t, 1, 1, 1)

	rooms := hotel.Rooms()
	require.Len(t, rooms, 3)

	assert.Equal(t, "S1", rooms[0].Name)
	assert.InDelta(t, model.DefaultBasePrice*1.0, rooms[0].Price, 1e-9)

	assert.Equal(t, "D1", rooms[1].Name)
	assert.InDelta(t, model.DefaultBasePrice*1.2, rooms[1].Price, 1e-9)

	assert.Equal(t, "E1", rooms[2].Name)
	assert.InDelta(t, model.DefaultBasePrice*1.35, rooms[2].Price, 1e-9)
}

func TestAddRoom_OrderingAfterMixedInserts(t *testing.T) {
	hotel := newHotel(t, 1, 1, 1)

	for _, tier := range []model.Tier{model.TierExecutive, model.TierStandard, model.TierDeluxe, model.TierStandard} {
		_, err := hotel.AddRoom(tier)
		require.NoError(t, err)
	}

	assert.Equal(t,
		[]string{"S1", "S2", "S3", "D1", "D2", "E1", "E2"},
		roomNames(hotel.Rooms()))
}

func TestAddRoom_CounterSurvivesRemoval(t *testing.T) {
	hotel := newHotel(t, 3, 0, 0)

	require.NoError(t, hotel.RemoveRoom("S3"))

	room, err := hotel.AddRoom(model.TierStandard)
	require.NoError(t, err)
	assert.Equal(t, "S4", room.Name, "removed room numbers are not reused")
}

func TestAddRoom_CapacityCap(t *testing.T) {
	hotel := newHotel(t, 50, 0, 0)

	_, err := hotel.AddRoom(model.TierDeluxe)
	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
	assert.Equal(t, 50, hotel.RoomCount())
}

func TestAddRoom_PricedFromCurrentBasePrice(t *testing.T) {
	hotel := newHotel(t, 1, 0, 0)
	require.NoError(t, hotel.UpdatePrice(200))

	room, err := hotel.AddRoom(model.TierExecutive)
	require.NoError(t, err)
	assert.InDelta(t, 200*1.35, room.Price, 1e-9)
}

func TestRemoveRoom(t *testing.T) {
	hotel := newHotel(t, 2, 0, 0)

	t.Run("unknown room", func(t *testing.T) {
		err := hotel.RemoveRoom("S9")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("booked room is kept", func(t *testing.T) {
		_, err := hotel.Reserve("Grace", 1, 3, "S1", "")
		require.NoError(t, err)

		err = hotel.RemoveRoom("s1")
		assert.Equal(t, 409, failure.GetCode(err))
		assert.Equal(t, 2, hotel.RoomCount())
	})

	t.Run("released room is removed", func(t *testing.T) {
		require.NoError(t, hotel.CancelReservation("Grace", "S1", 1, 3))
		require.NoError(t, hotel.RemoveRoom("S1"))
		assert.Equal(t, 1, hotel.RoomCount())
	})
}

func TestUpdatePrice(t *testing.T) {
	t.Run("rejects prices below the floor", func(t *testing.T) {
		hotel := newHotel(t, 1, 1, 0)

		err := hotel.UpdatePrice(99.99)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Equal(t, model.DefaultBasePrice, hotel.BasePrice())
	})

	t.Run("rejected while reservations exist", func(t *testing.T) {
		hotel := newHotel(t, 1, 1, 0)
		_, err := hotel.Reserve("Ada", 5, 8, "S1", "")
		require.NoError(t, err)

		err = hotel.UpdatePrice(500)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.Equal(t, model.DefaultBasePrice, hotel.BasePrice())

		for _, room := range hotel.Rooms() {
			assert.NotEqual(t, 500.0, room.Price)
		}
	})

	t.Run("flattens every room to the same price", func(t *testing.T) {
		hotel := newHotel(t, 1, 1, 1)

		require.NoError(t, hotel.UpdatePrice(500))
		assert.Equal(t, 500.0, hotel.BasePrice())

		for _, room := range hotel.Rooms() {
			assert.Equal(t, 500.0, room.Price, "tier differentiation is dropped on update")
		}
	})
}

func TestReserve(t *testing.T) {
	t.Run("books the room and prices the stay", func(t *testing.T) {
		hotel := newHotel(t, 1, 0, 0)
		require.NoError(t, hotel.UpdatePrice(1000))

		view, err := hotel.Reserve("Ada", 1, 4, "S1", "")
		require.NoError(t, err)

		assert.Equal(t, "S1", view.RoomName)
		assert.InDelta(t, 4000.0, view.TotalPrice, 1e-9)
		assert.NotEmpty(t, view.ID)

		rooms := hotel.Rooms()
		assert.True(t, rooms[0].Booked)
	})

	t.Run("rejects inverted day ranges", func(t *testing.T) {
		hotel := newHotel(t, 1, 0, 0)

		_, err := hotel.Reserve("Ada", 10, 5, "S1", "")
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Empty(t, hotel.Reservations())
		assert.False(t, hotel.Rooms()[0].Booked)
	})

	t.Run("rejects blank guest names", func(t *testing.T) {
		hotel := newHotel(t, 1, 0, 0)

		_, err := hotel.Reserve("  ", 1, 2, "S1", "")
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		hotel := newHotel(t, 1, 0, 0)

		_, err := hotel.Reserve("Ada", 1, 2, "D1", "")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("rejects overlapping stays", func(t *testing.T) {
		hotel := newHotel(t, 1, 0, 0)

		_, err := hotel.Reserve("Ada", 5, 10, "S1", "")
		require.NoError(t, err)

		for _, days := range [][2]int{{10, 12}, {1, 5}, {6, 9}, {4, 11}} {
			_, err = hotel.Reserve("Grace", days[0], days[1], "S1", "")
			assert.Equal(t, 409, failure.GetCode(err), "expected conflict for days %v", days)
		}

		assert.Len(t, hotel.Reservations(), 1)
	})

	t.Run("allows disjoint stays on the same room", func(t *testing.T) {
		hotel := newHotel(t, 1, 0, 0)

		_, err := hotel.Reserve("Ada", 5, 10, "S1", "")
		require.NoError(t, err)

		_, err = hotel.Reserve("Grace", 11, 14, "S1", "")
		require.NoError(t, err)

		assert.Len(t, hotel.Reservations(), 2)
	})
}

func TestReserve_OnlyOneConcurrentBookingWins(t *testing.T) {
	hotel := newHotel(t, 1, 0, 0)

	const attempts = 16

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := hotel.Reserve(fmt.Sprintf("guest-%d", i), 3, 6, "S1", "")
			results <- err
		}(i)
	}

	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, hotel.Reservations(), 1)
}

func TestCancelReservation(t *testing.T) {
	hotel := newHotel(t, 1, 0, 0)

	_, err := hotel.Reserve("Ada", 2, 6, "S1", "")
	require.NoError(t, err)

	t.Run("no match leaves state untouched", func(t *testing.T) {
		err := hotel.CancelReservation("Ada", "S1", 2, 7)
		assert.Equal(t, 404, failure.GetCode(err))
		assert.Len(t, hotel.Reservations(), 1)
	})

	t.Run("match is case-insensitive on names", func(t *testing.T) {
		require.NoError(t, hotel.CancelReservation("ADA", "s1", 2, 6))
		assert.Empty(t, hotel.Reservations())
		assert.False(t, hotel.Rooms()[0].Booked)
	})
}

func TestAvailabilityCounts(t *testing.T) {
	hotel := newHotel(t, 2, 1, 0)

	_, err := hotel.Reserve("Ada", 5, 7, "S1", "")
	require.NoError(t, err)
	_, err = hotel.Reserve("Grace", 6, 9, "D1", "")
	require.NoError(t, err)

	assert.Equal(t, 3, hotel.AvailableRoomsCount(4))
	assert.Equal(t, 0, hotel.BookedRoomsCount(4))

	assert.Equal(t, 2, hotel.BookedRoomsCount(6))
	assert.Equal(t, 1, hotel.AvailableRoomsCount(6))

	// Check-in and check-out days both count as booked.
	assert.Equal(t, 1, hotel.BookedRoomsCount(5))
	assert.Equal(t, 1, hotel.BookedRoomsCount(9))
	assert.Equal(t, 0, hotel.BookedRoomsCount(10))
}

func TestMonthAvailability(t *testing.T) {
	hotel := newHotel(t, 1, 0, 0)

	_, err := hotel.Reserve("Ada", 10, 12, "S1", "")
	require.NoError(t, err)

	days, err := hotel.MonthAvailability("s1")
	require.NoError(t, err)
	require.Len(t, days, 31)

	for _, day := range days {
		booked := day.Day >= 10 && day.Day <= 12
		assert.Equal(t, booked, day.Booked, "day %d", day.Day)
	}

	_, err = hotel.MonthAvailability("Z9")
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestEstimatedEarnings(t *testing.T) {
	hotel := newHotel(t, 2, 0, 0)
	require.NoError(t, hotel.UpdatePrice(1000))

	assert.Equal(t, 0.0, hotel.EstimatedEarnings())

	_, err := hotel.Reserve("Ada", 1, 3, "S1", "")
	require.NoError(t, err)
	_, err = hotel.Reserve("Grace", 1, 2, "S2", "")
	require.NoError(t, err)

	assert.InDelta(t, 3000.0+2000.0, hotel.EstimatedEarnings(), 1e-9)

	require.NoError(t, hotel.CancelReservation("Grace", "S2", 1, 2))
	assert.InDelta(t, 3000.0, hotel.EstimatedEarnings(), 1e-9)
}

func TestSetDayRate(t *testing.T) {
	hotel := newHotel(t, 1, 0, 0)

	require.NoError(t, hotel.SetDayRate(15, 1.4))
	assert.Equal(t, 1.4, hotel.DayRate(15))

	assert.Error(t, hotel.SetDayRate(15, 1.6))
	assert.Equal(t, 1.4, hotel.DayRate(15))

	assert.Equal(t, 1.0, hotel.DayRate(99))
}
