package model

import (
	"strings"

	"innkeeper/shared/failure"
)

// Tier determines the multiplier applied to the hotel base price when a
// room is created. Tiers differ by that constant only.
type Tier int

const (
	TierStandard Tier = iota
	TierDeluxe
	TierExecutive
)

var tierMultipliers = map[Tier]float64{
	TierStandard:  1.0,
	TierDeluxe:    1.2,
	TierExecutive: 1.35,
}

var tierPrefixes = map[Tier]string{
	TierStandard:  "S",
	TierDeluxe:    "D",
	TierExecutive: "E",
}

func ParseTier(value string) (Tier, error) {
	switch strings.ToLower(value) {
	case "standard":
		return TierStandard, nil
	case "deluxe":
		return TierDeluxe, nil
	case "executive":
		return TierExecutive, nil
	}

	return TierStandard, failure.BadRequestFromString("unknown room tier: " + value) //nolint:wrapcheck
}

func (t Tier) Multiplier() float64 {
	return tierMultipliers[t]
}

func (t Tier) Prefix() string {
	return tierPrefixes[t]
}

func (t Tier) String() string {
	switch t {
	case TierDeluxe:
		return "deluxe"
	case TierExecutive:
		return "executive"
	default:
		return "standard"
	}
}

// Room is a priced inventory unit. Booked reflects "has an open reservation
// attached"; it guards removal only. Day-by-day availability is derived from
// the reservation list instead.
type Room struct {
	Name   string  `json:"name"`
	Tier   Tier    `json:"-"`
	Price  float64 `json:"price"`
	Booked bool    `json:"booked"`
}

func NewRoom(name string, tier Tier, basePrice float64) *Room {
	return &Room{
		Name:  name,
		Tier:  tier,
		Price: basePrice * tier.Multiplier(),
	}
}

func (r *Room) SetPrice(newPrice float64) {
	r.Price = newPrice
}

func (r *Room) Book() {
	r.Booked = true
}

func (r *Room) Release() {
	r.Booked = false
}

// BookedOnDay reports whether any reservation in the given collection claims
// this room on the given day, check-in and check-out days included.
func (r *Room) BookedOnDay(day int, reservations []*Reservation) bool {
	for _, reservation := range reservations {
		if reservation.Room == r && reservation.CoversDay(day) {
			return true
		}
	}

	return false
}
