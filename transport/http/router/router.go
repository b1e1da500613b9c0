package router

import (
	"homestay/internal/handlers/auth"
	"homestay/internal/handlers/availability"
	"homestay/internal/handlers/booking"
	"homestay/internal/handlers/room"
	"homestay/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Room         room.Handler
	Availability availability.Handler
	Booking      booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthMiddleware.Auth)

			r.DomainHandlers.Booking.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
