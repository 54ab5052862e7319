package admin

import (
	"net/http"
	"tatkal/infras/otel"
	"tatkal/internal/domains/admin/service"
	"tatkal/shared/constant"
	"tatkal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", handler.Stats)
		r.Get("/bookings", handler.ListAllBookings)
		r.Post("/users/{userID}/bookings/{id}/cancel", handler.CancelBooking)
		r.Delete("/users/{id}", handler.DeleteUser)
	})
}

// Stats returns the platform rollup
// @Summary Platform statistics
// @Description Totals over all users and ledgers. No snapshot isolation.
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 403 {object} response.Error
// @Router /v1/admin/stats [get]
func (handler *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Stats")
	defer scope.End()

	res, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListAllBookings returns every booking across tenants
// @Summary List all bookings
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.GetAllBookingsResponse
// @Failure 403 {object} response.Error
// @Router /v1/admin/bookings [get]
func (handler *Handler) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListAllBookings")
	defer scope.End()

	res, err := handler.service.ListAllBookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list all bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelBooking cancels any user's booking
// @Summary Cancel a user's booking
// @Tags Admin
// @Produce json
// @Param userID path string true "User ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled"
// @Failure 403 {object} response.Error
// @Router /v1/admin/users/{userID}/bookings/{id}/cancel [post]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	userID := chi.URLParam(r, "userID")
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.CancelBooking(ctx, userID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking cancelled")
}

// DeleteUser removes a user and all their data
// @Summary Delete a user
// @Description Cascades over the user's bookings, payment methods and passengers.
// @Tags Admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User deleted"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/users/{id} [delete]
func (handler *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteUser(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "User deleted")
}
