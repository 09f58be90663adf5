package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"innkeeper/infras/otel"
	"innkeeper/internal/domains/hotel/model"
	"innkeeper/internal/domains/hotel/model/dto"
	"innkeeper/internal/domains/hotel/repository"
	"innkeeper/shared/constant"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetAll(ctx context.Context) dto.GetHotelsResponse
	Get(ctx context.Context, name string) (dto.HotelResponse, error)
	Delete(ctx context.Context, name string) error
	AddRoom(ctx context.Context, hotelName string, req dto.AddRoomRequest) (dto.RoomResponse, error)
	GetRoom(ctx context.Context, hotelName, roomName string) (dto.RoomResponse, error)
	RemoveRoom(ctx context.Context, hotelName, roomName string) error
	UpdatePrice(ctx context.Context, hotelName string, req dto.UpdatePriceRequest) error
	SetDayRate(ctx context.Context, hotelName string, day int, req dto.SetDayRateRequest) (dto.DayRateResponse, error)
	GetDayRate(ctx context.Context, hotelName string, day int) (dto.DayRateResponse, error)
	DayCounts(ctx context.Context, hotelName string, day int) (dto.DayCountsResponse, error)
	MonthAvailability(ctx context.Context, hotelName, roomName string) (dto.MonthAvailabilityResponse, error)
	Earnings(ctx context.Context, hotelName string) (dto.EarningsResponse, error)
}

type serviceImpl struct {
	repo repository.Directory
	otel otel.Otel
}

func New(repo repository.Directory, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := model.NewHotel(req.Name, req.StandardRooms, req.DeluxeRooms, req.ExecutiveRooms)
	if err != nil {
		log.Error().Err(err).Str("hotel", req.Name).Msg("failed to build hotel")

		return res, err
	}

	if err = s.repo.Insert(ctx, hotel); err != nil {
		log.Error().Err(err).Str("hotel", req.Name).Msg("failed to register hotel")

		return res, err
	}

	log.Info().
		Str("hotel", hotel.Name).
		Int("rooms", hotel.RoomCount()).
		Msg("hotel created")

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetHotelsResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(s.repo.GetAll(ctx))

	return res
}

func (s *serviceImpl) Get(ctx context.Context, name string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, name)
	if err != nil {
		return res, err
	}

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, name); err != nil {
		log.Error().Err(err).Str("hotel", name).Msg("failed to delete hotel")

		return err
	}

	log.Info().Str("hotel", name).Msg("hotel deleted")

	return nil
}

func (s *serviceImpl) AddRoom(ctx context.Context, hotelName string, req dto.AddRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, hotelName)
	if err != nil {
		return res, err
	}

	tier, err := model.ParseTier(req.Tier)
	if err != nil {
		return res, err
	}

	room, err := hotel.AddRoom(tier)
	if err != nil {
		log.Error().Err(err).Str("hotel", hotelName).Str("tier", req.Tier).Msg("failed to add room")

		return res, err
	}

	log.Info().Str("hotel", hotelName).Str("room", room.Name).Msg("room added")

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetRoom(ctx context.Context, hotelName, roomName string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, hotelName)
	if err != nil {
		return res, err
	}

	room, err := hotel.RoomByName(roomName)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) RemoveRoom(ctx context.Context, hotelName, roomName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, hotelName)
	if err != nil {
		return err
	}

	if err = hotel.RemoveRoom(roomName); err != nil {
		log.Error().Err(err).Str("hotel", hotelName).Str("room", roomName).Msg("failed to remove room")

		return err
	}

	log.Info().Str("hotel", hotelName).Str("room", roomName).Msg("room removed")

	return nil
}

func (s *serviceImpl) UpdatePrice(ctx context.Context, hotelName string, req dto.UpdatePriceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, hotelName)
	if err != nil {
		return err
	}

	if err = hotel.UpdatePrice(req.Price); err != nil {
		log.Error().Err(err).Str("hotel", hotelName).Float64("price", req.Price).Msg("failed to update price")

		return err
	}

	log.Info().Str("hotel", hotelName).Float64("price", req.Price).Msg("base price updated")

	return nil
}

func (s *serviceImpl) SetDayRate(ctx context.Context, hotelName string, day int, req dto.SetDayRateRequest) (res dto.DayRateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetDayRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, hotelName)
	if err != nil {
		return res, err
	}

	if err = hotel.SetDayRate(day, req.Rate); err != nil {
		log.Error().Err(err).Str("hotel", hotelName).Int("day", day).Float64("rate", req.Rate).Msg("failed to set day rate")

		return res, err
	}

	return dto.DayRateResponse{Day: day, Rate: req.Rate}, nil
}

func (s *serviceImpl) GetDayRate(ctx context.Context, hotelName string, day int) (res dto.DayRateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDayRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, hotelName)
	if err != nil {
		return res, err
	}

	return dto.DayRateResponse{Day: day, Rate: hotel.DayRate(day)}, nil
}

func (s *serviceImpl) DayCounts(ctx context.Context, hotelName string, day int) (res dto.DayCountsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DayCounts")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, hotelName)
	if err != nil {
		return res, err
	}

	return dto.DayCountsResponse{
		Day:       day,
		Available: hotel.AvailableRoomsCount(day),
		Booked:    hotel.BookedRoomsCount(day),
	}, nil
}

func (s *serviceImpl) MonthAvailability(ctx context.Context, hotelName, roomName string) (res dto.MonthAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, hotelName)
	if err != nil {
		return res, err
	}

	days, err := hotel.MonthAvailability(roomName)
	if err != nil {
		return res, err
	}

	res.FromModel(roomName, days)

	return res, nil
}

func (s *serviceImpl) Earnings(ctx context.Context, hotelName string) (res dto.EarningsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Earnings")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotel, err := s.repo.Get(ctx, hotelName)
	if err != nil {
		return res, err
	}

	return dto.EarningsResponse{Earnings: hotel.EstimatedEarnings()}, nil
}
