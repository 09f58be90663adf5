package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"innkeeper/infras/otel"
	"innkeeper/internal/domains/hotel/repository"
	"innkeeper/internal/domains/reservation/dto"
	"innkeeper/shared/constant"
)

// Reservation books and releases rooms through the owning hotel, so every
// operation goes through the hotel's own locking.
type Reservation interface {
	Reserve(ctx context.Context, hotelName string, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, hotelName string, req dto.CancelReservationRequest) error
	GetAll(ctx context.Context, hotelName string) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, hotelName, id string) (dto.ReservationResponse, error)
}

type serviceImpl struct {
	hotels repository.Directory
	otel   otel.Otel
}

func New(hotels repository.Directory, otel otel.Otel) Reservation {
	return &serviceImpl{
		hotels: hotels,
		otel:   otel,
	}
}

func (s *serviceImpl) Reserve(ctx context.Context, hotelName string, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.hotels.Get(ctx, hotelName)
	if err != nil {
		return res, err
	}

	view, err := hotel.Reserve(req.GuestName, req.CheckInDay, req.CheckOutDay, req.RoomName, req.DiscountCode)
	if err != nil {
		log.Error().Err(err).
			Str("hotel", hotelName).
			Str("room", req.RoomName).
			Str("guest", req.GuestName).
			Msg("failed to reserve room")

		return res, err
	}

	log.Info().
		Str("hotel", hotelName).
		Str("room", view.RoomName).
		Str("guest", view.GuestName).
		Float64("total", view.TotalPrice).
		Msg("room reserved")

	res.FromView(view)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, hotelName string, req dto.CancelReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.hotels.Get(ctx, hotelName)
	if err != nil {
		return err
	}

	if err = hotel.CancelReservation(req.GuestName, req.RoomName, req.CheckInDay, req.CheckOutDay); err != nil {
		log.Error().Err(err).
			Str("hotel", hotelName).
			Str("room", req.RoomName).
			Str("guest", req.GuestName).
			Msg("failed to cancel reservation")

		return err
	}

	log.Info().
		Str("hotel", hotelName).
		Str("room", req.RoomName).
		Str("guest", req.GuestName).
		Msg("reservation cancelled")

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelName string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.hotels.Get(ctx, hotelName)
	if err != nil {
		return res, err
	}

	res.FromViews(hotel.Reservations())

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, hotelName, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.hotels.Get(ctx, hotelName)
	if err != nil {
		return res, err
	}

	view, err := hotel.ReservationByID(id)
	if err != nil {
		return res, err
	}

	res.FromView(view)

	return res, nil
}
