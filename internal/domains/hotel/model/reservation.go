package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"innkeeper/shared/failure"
)

const (
	DiscountCodeEmployee = "I_WORK_HERE"
	DiscountCodeLongStay = "STAY4_GET1"
	DiscountCodePayday   = "PAYDAY"

	longStayMinDays = 5
	employeeRate    = 0.90
	paydayRate      = 0.93

	// modifierNormalizer divides the running nightly price whenever a day
	// carries a non-neutral modifier. The reduction carries over into the
	// remaining days of the stay. Inherited contract, kept bit-for-bit.
	modifierNormalizer = 1.5
)

// Reservation is a guest's claim on one room over an inclusive day range.
// Once stored it is never mutated, except for its cached total price.
type Reservation struct {
	ID           string
	GuestName    string
	CheckInDay   int
	CheckOutDay  int
	Room         *Room
	DiscountCode string
	TotalPrice   float64
	Valid        bool
	CreatedAt    time.Time
}

// NewReservation validates the day range and prices the stay without any
// calendar context. The figure is provisional: Hotel.Reserve reprices with
// the hotel's rate calendar before the reservation is stored, and that value
// is the one earnings and responses report.
func NewReservation(guestName string, checkInDay, checkOutDay int, room *Room, discountCode string) *Reservation {
	reservation := &Reservation{
		ID:           uuid.NewString(),
		GuestName:    guestName,
		CheckInDay:   checkInDay,
		CheckOutDay:  checkOutDay,
		Room:         room,
		DiscountCode: discountCode,
		Valid:        checkInDay <= checkOutDay,
		CreatedAt:    time.Now(),
	}

	if reservation.Valid {
		reservation.TotalPrice = reservation.priceTotal(nil)
	}

	return reservation
}

// PriceTotal computes the stay's total against the given rate calendar,
// caches it and returns it.
func (r *Reservation) PriceTotal(calendar *RateCalendar) float64 {
	r.TotalPrice = r.priceTotal(calendar)

	return r.TotalPrice
}

func (r *Reservation) priceTotal(calendar *RateCalendar) float64 {
	nightly := r.Room.Price
	total := 0.0

	for day := r.CheckInDay; day <= r.CheckOutDay; day++ {
		modifier := 1.0
		if calendar != nil {
			modifier = calendar.Modifier(day)
		}

		if modifier != 1.0 {
			nightly /= modifierNormalizer
		}

		total += nightly * modifier
	}

	return r.applyDiscount(total)
}

func (r *Reservation) applyDiscount(total float64) float64 {
	if r.DiscountCode == "" {
		return total
	}

	switch r.DiscountCode {
	case DiscountCodeEmployee:
		return total * employeeRate
	case DiscountCodeLongStay:
		if r.CheckOutDay-r.CheckInDay+1 >= longStayMinDays {
			// First night free, at the room's current nightly price.
			return total - r.Room.Price
		}

		return total
	case DiscountCodePayday:
		if r.coversPayday(15) || r.coversPayday(30) {
			return total * paydayRate
		}

		return total
	default:
		log.Warn().
			Str("code", r.DiscountCode).
			Str("guest", r.GuestName).
			Msg("unknown discount code, no discount applied")

		return total
	}
}

// coversPayday excludes the check-out day, unlike CoversDay. The two range
// rules are distinct on purpose.
func (r *Reservation) coversPayday(day int) bool {
	return day >= r.CheckInDay && day < r.CheckOutDay
}

// CoversDay reports whether the day falls within the stay, check-in and
// check-out days included.
func (r *Reservation) CoversDay(day int) bool {
	return day >= r.CheckInDay && day <= r.CheckOutDay
}

func (r *Reservation) Nights() int {
	return r.CheckOutDay - r.CheckInDay
}

// PricePerNight divides the cached total by the night count. A same-day stay
// has zero nights and no meaningful per-night rate.
func (r *Reservation) PricePerNight() (float64, error) {
	nights := r.Nights()
	if nights == 0 {
		return 0, failure.BadRequestFromString("a same-day stay has no per-night price") //nolint:wrapcheck
	}

	return r.TotalPrice / float64(nights), nil
}

// Matches compares the identifying 4-tuple, names case-insensitively.
func (r *Reservation) Matches(guestName, roomName string, checkInDay, checkOutDay int) bool {
	return strings.EqualFold(r.GuestName, guestName) &&
		strings.EqualFold(r.Room.Name, roomName) &&
		r.CheckInDay == checkInDay &&
		r.CheckOutDay == checkOutDay
}

// ReservationView is an immutable snapshot handed out by the hotel so callers
// never hold references into its guarded state.
type ReservationView struct {
	ID            string
	GuestName     string
	CheckInDay    int
	CheckOutDay   int
	RoomName      string
	DiscountCode  string
	TotalPrice    float64
	PricePerNight *float64
	CreatedAt     time.Time
}

func (r *Reservation) View() ReservationView {
	view := ReservationView{
		ID:           r.ID,
		GuestName:    r.GuestName,
		CheckInDay:   r.CheckInDay,
		CheckOutDay:  r.CheckOutDay,
		RoomName:     r.Room.Name,
		DiscountCode: r.DiscountCode,
		TotalPrice:   r.TotalPrice,
		CreatedAt:    r.CreatedAt,
	}

	if perNight, err := r.PricePerNight(); err == nil {
		view.PricePerNight = &perNight
	}

	return view
}
