package router

import (
	"tatkal/internal/handlers/admin"
	"tatkal/internal/handlers/auth"
	"tatkal/internal/handlers/booking"
	"tatkal/internal/handlers/catalog"
	"tatkal/internal/handlers/passenger"
	"tatkal/internal/handlers/payment"
	"tatkal/shared/constant"
	"tatkal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Passenger passenger.Handler
	Payment   payment.Handler
	Catalog   catalog.Handler
	Booking   booking.Handler
	Admin     admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

// SetupRoutes mounts all domain routers under /v1. Signup, login and token
// refresh are public; everything else requires a valid access token, with the
// admin surface additionally gated on the admin role.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.PublicRouter(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthMiddleware.Auth)

			r.DomainHandlers.Auth.ProtectedRouter(protected)
			r.DomainHandlers.Passenger.Router(protected)
			r.DomainHandlers.Payment.Router(protected)
			r.DomainHandlers.Catalog.Router(protected)
			r.DomainHandlers.Booking.Router(protected)

			protected.Group(func(adminOnly chi.Router) {
				adminOnly.Use(r.AuthMiddleware.RequireRole(constant.RoleAdmin))

				r.DomainHandlers.Admin.Router(adminOnly)
				r.DomainHandlers.Catalog.AdminRouter(adminOnly)
			})
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
