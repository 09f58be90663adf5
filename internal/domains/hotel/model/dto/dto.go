package dto

import (
	"innkeeper/internal/domains/hotel/model"
	gDto "innkeeper/shared/dto"
)

type CreateHotelRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	StandardRooms  int    `json:"standard_rooms" validate:"gte=0,lte=50"`
	DeluxeRooms    int    `json:"deluxe_rooms" validate:"gte=0,lte=50"`
	ExecutiveRooms int    `json:"executive_rooms" validate:"gte=0,lte=50"`
}

type AddRoomRequest struct {
	Tier string `json:"tier" validate:"required,tier"`
}

type UpdatePriceRequest struct {
	Price float64 `json:"price" validate:"required,gte=100"`
}

type SetDayRateRequest struct {
	Rate float64 `json:"rate" validate:"required,gte=0.5,lte=1.5"`
}

type RoomResponse struct {
	Name   string  `json:"name"`
	Tier   string  `json:"tier"`
	Price  float64 `json:"price"`
	Booked bool    `json:"booked"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.Name = room.Name
	r.Tier = room.Tier.String()
	r.Price = room.Price
	r.Booked = room.Booked
}

type HotelResponse struct {
	Name      string         `json:"name"`
	BasePrice float64        `json:"base_price"`
	RoomCount int            `json:"room_count"`
	Rooms     []RoomResponse `json:"rooms"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(hotel *model.Hotel) {
	r.Name = hotel.Name
	r.BasePrice = hotel.BasePrice()
	rooms := hotel.Rooms()
	r.RoomCount = len(rooms)

	r.Rooms = make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}

	r.Metadata.FromModel(hotel.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(hotels []*model.Hotel) {
	r.TotalData = len(hotels)

	r.Hotels = make([]HotelResponse, len(hotels))
	for i, hotel := range hotels {
		r.Hotels[i].FromModel(hotel)
	}
}

type DayRateResponse struct {
	Day  int     `json:"day"`
	Rate float64 `json:"rate"`
}

type DayCountsResponse struct {
	Day       int `json:"day"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

type DayAvailabilityResponse struct {
	Day    int  `json:"day"`
	Booked bool `json:"booked"`
}

type MonthAvailabilityResponse struct {
	RoomName string                    `json:"room_name"`
	Days     []DayAvailabilityResponse `json:"days"`
}

func (r *MonthAvailabilityResponse) FromModel(roomName string, days []model.DayAvailability) {
	r.RoomName = roomName

	r.Days = make([]DayAvailabilityResponse, len(days))
	for i, day := range days {
		r.Days[i] = DayAvailabilityResponse{Day: day.Day, Booked: day.Booked}
	}
}

type EarningsResponse struct {
	Earnings float64 `json:"earnings"`
}
