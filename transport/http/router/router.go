package router

import (
	"homestay/internal/handlers/booking"
	"homestay/internal/handlers/homestay"
	"homestay/internal/handlers/lead"
	"homestay/internal/handlers/room"
	"homestay/internal/handlers/tourpackage"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Homestay homestay.Handler
	Room     room.Handler
	Lead     lead.Handler
	Booking  booking.Handler
	Package  tourpackage.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Homestay.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Lead.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Package.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
