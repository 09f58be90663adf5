package model

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"innkeeper/shared/constant"
	"innkeeper/shared/failure"
	gModel "innkeeper/shared/model"
	"innkeeper/shared/timezone"
)

const (
	EntityName = "hotel"

	DefaultBasePrice = 1299.0
	MinBasePrice     = 100.0
	MaxRooms         = 50
)

// Hotel owns the room inventory, the reservation list and the rate calendar,
// and enforces every cross-entity rule. All access goes through its lock:
// booking is a single reserve-if-available operation, so two concurrent
// requests can never both observe a room as free and both commit.
type Hotel struct {
	mu sync.RWMutex

	Name         string
	basePrice    float64
	rooms        []*Room
	reservations []*Reservation
	calendar     *RateCalendar
	tierCounters map[Tier]int

	gModel.Metadata
}

// NewHotel builds a hotel with the requested room counts, named S1..Sn,
// D1..Dn, E1..En and priced off the default base price.
func NewHotel(name string, numStandard, numDeluxe, numExecutive int) (*Hotel, error) {
	if strings.TrimSpace(name) == "" {
		return nil, failure.BadRequestFromString("hotel name is required") //nolint:wrapcheck
	}

	total := numStandard + numDeluxe + numExecutive
	if total < 1 || total > MaxRooms {
		return nil, failure.BadRequestFromString("total number of rooms must be between 1 and 50") //nolint:wrapcheck
	}

	now := timezone.Now()
	hotel := &Hotel{
		Name:         name,
		basePrice:    DefaultBasePrice,
		calendar:     NewRateCalendar(),
		tierCounters: map[Tier]int{},
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}

	counts := map[Tier]int{
		TierStandard:  numStandard,
		TierDeluxe:    numDeluxe,
		TierExecutive: numExecutive,
	}

	for _, tier := range []Tier{TierStandard, TierDeluxe, TierExecutive} {
		for i := 0; i < counts[tier]; i++ {
			hotel.tierCounters[tier]++
			name := tier.Prefix() + strconv.Itoa(hotel.tierCounters[tier])
			hotel.rooms = append(hotel.rooms, NewRoom(name, tier, hotel.basePrice))
		}
	}

	return hotel, nil
}

func (h *Hotel) BasePrice() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.basePrice
}

func (h *Hotel) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms)
}

func (h *Hotel) HasActiveReservations() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.reservations) > 0
}

// Rooms returns value snapshots in inventory order.
func (h *Hotel) Rooms() []Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rooms := make([]Room, len(h.rooms))
	for i, room := range h.rooms {
		rooms[i] = *room
	}

	return rooms
}

func (h *Hotel) RoomByName(name string) (Room, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room := h.findRoom(name)
	if room == nil {
		return Room{}, failure.NotFound("room not found") //nolint:wrapcheck
	}

	return *room, nil
}

// AddRoom appends a room of the given tier, named from the tier's monotonic
// counter, and re-sorts the inventory. Counters never go backwards, so a
// removed room's number is not reused.
func (h *Hotel) AddRoom(tier Tier) (Room, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.rooms) >= MaxRooms {
		return Room{}, failure.Conflict("cannot add more rooms, maximum limit reached") //nolint:wrapcheck
	}

	h.tierCounters[tier]++
	name := tier.Prefix() + strconv.Itoa(h.tierCounters[tier])

	room := NewRoom(name, tier, h.basePrice)
	h.rooms = append(h.rooms, room)
	h.sortRooms()
	h.ModifiedAt = timezone.Now()

	return *room, nil
}

// RemoveRoom deletes the named room unless it has an open reservation
// attached.
func (h *Hotel) RemoveRoom(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, room := range h.rooms {
		if !strings.EqualFold(room.Name, name) {
			continue
		}

		if room.Booked {
			return failure.Conflict("room " + room.Name + " cannot be removed, it is currently booked") //nolint:wrapcheck
		}

		h.rooms = append(h.rooms[:i], h.rooms[i+1:]...)
		h.ModifiedAt = timezone.Now()

		return nil
	}

	return failure.NotFound("room not found") //nolint:wrapcheck
}

// UpdatePrice sets the base price and flattens every room to that same
// absolute price, discarding tier differentiation. Allowed only while no
// reservations exist.
func (h *Hotel) UpdatePrice(newPrice float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if newPrice < MinBasePrice {
		return failure.BadRequestFromString("price per night must be greater or equal to 100.0") //nolint:wrapcheck
	}

	if len(h.reservations) > 0 {
		return failure.Conflict("cannot update price while there are active reservations") //nolint:wrapcheck
	}

	for _, room := range h.rooms {
		room.SetPrice(newPrice)
	}

	h.basePrice = newPrice
	h.ModifiedAt = timezone.Now()

	return nil
}

// Reserve books a room for the inclusive day range in one atomic step:
// availability is re-checked under the exclusive lock, so a stale check by
// the caller cannot double-book.
func (h *Hotel) Reserve(guestName string, checkInDay, checkOutDay int, roomName, discountCode string) (ReservationView, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if strings.TrimSpace(guestName) == "" {
		return ReservationView{}, failure.BadRequestFromString("guest name is required") //nolint:wrapcheck
	}

	room := h.findRoom(roomName)
	if room == nil {
		return ReservationView{}, failure.NotFound("room not found") //nolint:wrapcheck
	}

	reservation := NewReservation(guestName, checkInDay, checkOutDay, room, discountCode)
	if !reservation.Valid {
		return ReservationView{}, failure.BadRequestFromString("check-out day precedes check-in day") //nolint:wrapcheck
	}

	for _, existing := range h.reservations {
		if existing.Room == room &&
			existing.CheckInDay <= checkOutDay && checkInDay <= existing.CheckOutDay {
			return ReservationView{}, failure.Conflict("room " + room.Name + " is already reserved for part of that period") //nolint:wrapcheck
		}
	}

	reservation.PriceTotal(h.calendar)

	h.reservations = append(h.reservations, reservation)
	room.Book()
	h.ModifiedAt = timezone.Now()

	return reservation.View(), nil
}

// CancelReservation removes the reservation matching the exact 4-tuple and
// releases the room's booked flag.
func (h *Hotel) CancelReservation(guestName, roomName string, checkInDay, checkOutDay int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, reservation := range h.reservations {
		if !reservation.Matches(guestName, roomName, checkInDay, checkOutDay) {
			continue
		}

		h.reservations = append(h.reservations[:i], h.reservations[i+1:]...)
		reservation.Room.Release()
		h.ModifiedAt = timezone.Now()

		return nil
	}

	return failure.NotFound("reservation not found") //nolint:wrapcheck
}

func (h *Hotel) Reservations() []ReservationView {
	h.mu.RLock()
	defer h.mu.RUnlock()

	views := make([]ReservationView, len(h.reservations))
	for i, reservation := range h.reservations {
		views[i] = reservation.View()
	}

	return views
}

func (h *Hotel) ReservationByID(id string) (ReservationView, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, reservation := range h.reservations {
		if reservation.ID == id {
			return reservation.View(), nil
		}
	}

	return ReservationView{}, failure.NotFound("reservation not found") //nolint:wrapcheck
}

func (h *Hotel) AvailableRoomsCount(day int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, room := range h.rooms {
		if !room.BookedOnDay(day, h.reservations) {
			count++
		}
	}

	return count
}

func (h *Hotel) BookedRoomsCount(day int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, room := range h.rooms {
		if room.BookedOnDay(day, h.reservations) {
			count++
		}
	}

	return count
}

// DayAvailability is one entry of a room's month report.
type DayAvailability struct {
	Day    int
	Booked bool
}

// MonthAvailability reports the named room's booked state for every day of
// the month.
func (h *Hotel) MonthAvailability(roomName string) ([]DayAvailability, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room := h.findRoom(roomName)
	if room == nil {
		return nil, failure.NotFound("room not found") //nolint:wrapcheck
	}

	days := make([]DayAvailability, constant.DaysInMonth)
	for day := 1; day <= constant.DaysInMonth; day++ {
		days[day-1] = DayAvailability{
			Day:    day,
			Booked: room.BookedOnDay(day, h.reservations),
		}
	}

	return days, nil
}

// EstimatedEarnings sums the cached totals of every current reservation.
func (h *Hotel) EstimatedEarnings() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0.0
	for _, reservation := range h.reservations {
		total += reservation.TotalPrice
	}

	return total
}

// SetDayRate stores a price multiplier on the hotel's rate calendar.
func (h *Hotel) SetDayRate(day int, rate float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.calendar.Set(day, rate); err != nil {
		return err
	}

	h.ModifiedAt = timezone.Now()

	return nil
}

func (h *Hotel) DayRate(day int) float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.calendar.Modifier(day)
}

func (h *Hotel) findRoom(name string) *Room {
	for _, room := range h.rooms {
		if strings.EqualFold(room.Name, name) {
			return room
		}
	}

	return nil
}

// sortRooms restores the inventory order: standard before deluxe before
// executive, ascending numeric suffix within a tier.
func (h *Hotel) sortRooms() {
	sort.SliceStable(h.rooms, func(i, j int) bool {
		if h.rooms[i].Tier != h.rooms[j].Tier {
			return h.rooms[i].Tier < h.rooms[j].Tier
		}

		ni, _ := strconv.Atoi(h.rooms[i].Name[1:])
		nj, _ := strconv.Atoi(h.rooms[j].Name[1:])

		return ni < nj
	})
}
