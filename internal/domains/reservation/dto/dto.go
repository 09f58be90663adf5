package dto

import (
	"innkeeper/internal/domains/hotel/model"
	"innkeeper/shared/constant"
)

type CreateReservationRequest struct {
	GuestName    string `json:"guest_name" validate:"required,max=255"`
	CheckInDay   int    `json:"check_in_day" validate:"required,gte=1,lte=31"`
	CheckOutDay  int    `json:"check_out_day" validate:"required,gte=1,lte=31"`
	RoomName     string `json:"room_name" validate:"required"`
	DiscountCode string `json:"discount_code" validate:"omitempty,max=64"`
}

type CancelReservationRequest struct {
	GuestName   string `json:"guest_name" validate:"required"`
	RoomName    string `json:"room_name" validate:"required"`
	CheckInDay  int    `json:"check_in_day" validate:"required,gte=1,lte=31"`
	CheckOutDay int    `json:"check_out_day" validate:"required,gte=1,lte=31"`
}

type ReservationResponse struct {
	ID            string   `json:"id"`
	GuestName     string   `json:"guest_name"`
	RoomName      string   `json:"room_name"`
	CheckInDay    int      `json:"check_in_day"`
	CheckOutDay   int      `json:"check_out_day"`
	DiscountCode  string   `json:"discount_code,omitempty"`
	TotalPrice    float64  `json:"total_price"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

func (r *ReservationResponse) FromView(view model.ReservationView) {
	r.ID = view.ID
	r.GuestName = view.GuestName
	r.RoomName = view.RoomName
	r.CheckInDay = view.CheckInDay
	r.CheckOutDay = view.CheckOutDay
	r.DiscountCode = view.DiscountCode
	r.TotalPrice = view.TotalPrice
	r.PricePerNight = view.PricePerNight
	r.CreatedAt = view.CreatedAt.Format(constant.DateFormat)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromViews(views []model.ReservationView) {
	r.TotalData = len(views)

	r.Reservations = make([]ReservationResponse, len(views))
	for i, view := range views {
		r.Reservations[i].FromView(view)
	}
}
