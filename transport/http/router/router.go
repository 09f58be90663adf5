package router

import (
	"github.com/go-chi/chi/v5"

	"innkeeper/internal/handlers/hotel"
	"innkeeper/internal/handlers/reservation"
)

type DomainHandlers struct {
	Hotel       hotel.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
