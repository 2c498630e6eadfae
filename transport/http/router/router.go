package router

import (
	"livecity/internal/handlers/booking"
	"livecity/internal/handlers/reminder"
	"livecity/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking  booking.Handler
	Reminder reminder.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.app.RateLimit())

		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Reminder.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
	}
}
