package hotel

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innkeeper/infras/otel"
	"innkeeper/internal/domains/hotel/model/dto"
	"innkeeper/internal/domains/hotel/service"
	"innkeeper/shared"
	"innkeeper/shared/constant"
	"innkeeper/shared/failure"
	"innkeeper/shared/validator"
	"innkeeper/transport/http/response"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{name}", handler.GetHotelByName)
		routerGroup.Delete("/{name}", handler.DeleteHotel)
		routerGroup.Patch("/{name}/price", handler.UpdatePrice)
		routerGroup.Post("/{name}/rooms", handler.AddRoom)
		routerGroup.Get("/{name}/rooms/{room}", handler.GetRoom)
		routerGroup.Delete("/{name}/rooms/{room}", handler.RemoveRoom)
		routerGroup.Get("/{name}/rooms/{room}/availability", handler.GetRoomAvailability)
		routerGroup.Get("/{name}/availability", handler.GetDayCounts)
		routerGroup.Get("/{name}/earnings", handler.GetEarnings)
		routerGroup.Put("/{name}/rates/{day}", handler.SetDayRate)
		routerGroup.Get("/{name}/rates/{day}", handler.GetDayRate)
	})
}

// CreateHotel handles the creation of a new hotel.
// @Summary Create a new hotel
// @Description Create a hotel with the requested standard, deluxe and executive room counts.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} response.Data[dto.HotelResponse] "Hotel created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [post]
func (handler *Handler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.CreateHotelRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	hotel, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel created successfully")

	response.WithJSON(w, http.StatusCreated, hotel)
}

// GetHotels retrieves every registered hotel.
// @Summary Get all hotels
// @Description Retrieve all hotels in registration order.
// @Tags Hotel
// @Produce json
// @Success 200 {object} response.Data[dto.GetHotelsResponse] "List of hotels"
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	hotels := handler.service.GetAll(ctx)

	scope.AddEvent("Hotels retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotelByName retrieves a hotel by its name.
// @Summary Get a hotel by name
// @Description Retrieve a hotel with its full room inventory.
// @Tags Hotel
// @Produce json
// @Param name path string true "Hotel name"
// @Success 200 {object} response.Data[dto.HotelResponse] "Hotel details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name} [get]
func (handler *Handler) GetHotelByName(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByName")
	defer scope.End()

	hotel, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamHotelName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel by name")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotel)
}

// DeleteHotel removes a hotel by its name.
// @Summary Delete a hotel by name
// @Description Remove a hotel and everything it owns.
// @Tags Hotel
// @Produce json
// @Param name path string true "Hotel name"
// @Success 200 {object} response.Message "Hotel deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name} [delete]
func (handler *Handler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamHotelName)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel deleted successfully")

	response.WithMessage(w, http.StatusOK, "Hotel deleted successfully")
}

// UpdatePrice sets a hotel's nightly price.
// @Summary Update a hotel's nightly price
// @Description Set the nightly price for every room of the hotel. Rejected while reservations exist.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param name path string true "Hotel name"
// @Param request body dto.UpdatePriceRequest true "Update Price Request"
// @Success 200 {object} response.Message "Price updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name}/price [patch]
func (handler *Handler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePrice")
	defer scope.End()

	req := dto.UpdatePriceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePrice(ctx, chi.URLParam(r, constant.RequestParamHotelName), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update price")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price updated successfully")

	response.WithMessage(w, http.StatusOK, "Price updated successfully")
}

// AddRoom appends a room of the requested tier.
// @Summary Add a room
// @Description Add a room of the given tier to the hotel's inventory.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param name path string true "Hotel name"
// @Param request body dto.AddRoomRequest true "Add Room Request"
// @Success 201 {object} response.Data[dto.RoomResponse] "Room added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name}/rooms [post]
func (handler *Handler) AddRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	req := dto.AddRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.AddRoom(ctx, chi.URLParam(r, constant.RequestParamHotelName), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room added successfully")

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRoom retrieves one room of a hotel.
// @Summary Get a room
// @Description Retrieve a room by its name, matched case-insensitively.
// @Tags Hotel
// @Produce json
// @Param name path string true "Hotel name"
// @Param room path string true "Room name"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name}/rooms/{room} [get]
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	hotelName := chi.URLParam(r, constant.RequestParamHotelName)
	roomName := chi.URLParam(r, constant.RequestParamRoomName)

	room, err := handler.service.GetRoom(ctx, hotelName, roomName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// RemoveRoom removes a room from a hotel.
// @Summary Remove a room
// @Description Remove a room from the inventory unless it is currently booked.
// @Tags Hotel
// @Produce json
// @Param name path string true "Hotel name"
// @Param room path string true "Room name"
// @Success 200 {object} response.Message "Room removed successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name}/rooms/{room} [delete]
func (handler *Handler) RemoveRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveRoom")
	defer scope.End()

	hotelName := chi.URLParam(r, constant.RequestParamHotelName)
	roomName := chi.URLParam(r, constant.RequestParamRoomName)

	if err := handler.service.RemoveRoom(ctx, hotelName, roomName); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room removed successfully")

	response.WithMessage(w, http.StatusOK, "Room removed successfully")
}

// GetRoomAvailability reports a room's booked state for every day of the month.
// @Summary Get a room's month availability
// @Description Retrieve the booked state of a room for each of the 31 days.
// @Tags Hotel
// @Produce json
// @Param name path string true "Hotel name"
// @Param room path string true "Room name"
// @Success 200 {object} response.Data[dto.MonthAvailabilityResponse] "Availability report"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name}/rooms/{room}/availability [get]
func (handler *Handler) GetRoomAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomAvailability")
	defer scope.End()

	hotelName := chi.URLParam(r, constant.RequestParamHotelName)
	roomName := chi.URLParam(r, constant.RequestParamRoomName)

	availability, err := handler.service.MonthAvailability(ctx, hotelName, roomName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// GetDayCounts reports how many rooms are available and booked on a day.
// @Summary Get a day's availability counts
// @Description Retrieve the number of available and booked rooms for the given day.
// @Tags Hotel
// @Produce json
// @Param name path string true "Hotel name"
// @Param day query int true "Day of the month (1-31)"
// @Success 200 {object} response.Data[dto.DayCountsResponse] "Day counts"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name}/availability [get]
func (handler *Handler) GetDayCounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDayCounts")
	defer scope.End()

	day, err := shared.ConvertStringToInt(r.URL.Query().Get(constant.RequestParamDay))
	if err != nil {
		err = failure.BadRequestFromString("day must be an integer")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	counts, err := handler.service.DayCounts(ctx, chi.URLParam(r, constant.RequestParamHotelName), day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get day counts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Day counts retrieved successfully")

	response.WithJSON(w, http.StatusOK, counts)
}

// GetEarnings reports a hotel's estimated earnings.
// @Summary Get estimated earnings
// @Description Sum the total prices of the hotel's current reservations.
// @Tags Hotel
// @Produce json
// @Param name path string true "Hotel name"
// @Success 200 {object} response.Data[dto.EarningsResponse] "Estimated earnings"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name}/earnings [get]
func (handler *Handler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEarnings")
	defer scope.End()

	earnings, err := handler.service.Earnings(ctx, chi.URLParam(r, constant.RequestParamHotelName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get earnings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Earnings retrieved successfully")

	response.WithJSON(w, http.StatusOK, earnings)
}

// SetDayRate stores a price multiplier for a day of the month.
// @Summary Set a day's rate multiplier
// @Description Store a rate multiplier between 0.5 and 1.5 for the given day.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param name path string true "Hotel name"
// @Param day path int true "Day of the month (1-31)"
// @Param request body dto.SetDayRateRequest true "Set Day Rate Request"
// @Success 200 {object} response.Data[dto.DayRateResponse] "Day rate stored"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name}/rates/{day} [put]
func (handler *Handler) SetDayRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetDayRate")
	defer scope.End()

	day, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamDay))
	if err != nil {
		err = failure.BadRequestFromString("day must be an integer")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.SetDayRateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	rate, err := handler.service.SetDayRate(ctx, chi.URLParam(r, constant.RequestParamHotelName), day, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set day rate")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Day rate stored successfully")

	response.WithJSON(w, http.StatusOK, rate)
}

// GetDayRate retrieves the rate multiplier stored for a day.
// @Summary Get a day's rate multiplier
// @Description Retrieve the rate multiplier for the given day, 1.0 when unset.
// @Tags Hotel
// @Produce json
// @Param name path string true "Hotel name"
// @Param day path int true "Day of the month (1-31)"
// @Success 200 {object} response.Data[dto.DayRateResponse] "Day rate"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{name}/rates/{day} [get]
func (handler *Handler) GetDayRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDayRate")
	defer scope.End()

	day, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamDay))
	if err != nil {
		err = failure.BadRequestFromString("day must be an integer")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	rate, err := handler.service.GetDayRate(ctx, chi.URLParam(r, constant.RequestParamHotelName), day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get day rate")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Day rate retrieved successfully")

	response.WithJSON(w, http.StatusOK, rate)
}
