package router

import (
	"github.com/go-chi/chi/v5"

	"innsync/internal/handlers/booking"
	"innsync/internal/handlers/sync"
)

type DomainHandlers struct {
	Booking booking.Handler
	Sync    sync.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Sync.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
