//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"innkeeper/config"
	"innkeeper/infras/otel"
	"innkeeper/infras/redis"
	hotelRepository "innkeeper/internal/domains/hotel/repository"
	hotelService "innkeeper/internal/domains/hotel/service"
	reservationService "innkeeper/internal/domains/reservation/service"
	hotelHandler "innkeeper/internal/handlers/hotel"
	reservationHandler "innkeeper/internal/handlers/reservation"
	"innkeeper/shared/cache"
	"innkeeper/transport/http"
	"innkeeper/transport/http/middleware"
	"innkeeper/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var reservationDomain = wire.NewSet(
	reservationService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
