// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"innkeeper/config"
	"innkeeper/infras/otel"
	"innkeeper/infras/redis"
	"innkeeper/internal/domains/hotel/repository"
	"innkeeper/internal/domains/hotel/service"
	service2 "innkeeper/internal/domains/reservation/service"
	"innkeeper/internal/handlers/hotel"
	"innkeeper/internal/handlers/reservation"
	"innkeeper/shared/cache"
	"innkeeper/transport/http"
	"innkeeper/transport/http/middleware"
	"innkeeper/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	otelOtel := otel.New(configConfig)
	directory := repository.New(otelOtel)
	serviceHotel := service.New(directory, otelOtel)
	handler := hotel.New(serviceHotel, otelOtel)
	serviceReservation := service2.New(directory, otelOtel)
	reservationHandler := reservation.New(serviceReservation, otelOtel)
	domainHandlers := router.DomainHandlers{
		Hotel:       handler,
		Reservation: reservationHandler,
	}
	routerRouter := router.New(domainHandlers)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(otel.New, redis.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var hotelDomain = wire.NewSet(repository.New, service.New)

var reservationDomain = wire.NewSet(service2.New)

var domains = wire.NewSet(
	hotelDomain,
	reservationDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), hotel.New, reservation.New, router.New)
