package passenger

import (
	"net/http"
	"tatkal/infras/otel"
	"tatkal/internal/domains/passenger/model/dto"
	"tatkal/internal/domains/passenger/service"
	"tatkal/shared/constant"
	"tatkal/shared/validator"
	"tatkal/transport/http/middleware"
	"tatkal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Passenger
	otel    otel.Otel
}

func New(service service.Passenger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/passengers", func(r chi.Router) {
		r.Get("/", handler.GetAll)
		r.Post("/", handler.Create)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

// GetAll lists the user's saved passengers
// @Summary List saved passengers
// @Tags Passengers
// @Produce json
// @Success 200 {object} dto.GetPassengersResponse
// @Failure 401 {object} response.Error
// @Router /v1/passengers [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAll")
	defer scope.End()

	res, err := handler.service.GetAll(ctx, middleware.UserID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list passengers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Create adds a saved passenger
// @Summary Add a saved passenger
// @Tags Passengers
// @Accept json
// @Produce json
// @Param request body dto.CreatePassengerRequest true "Create Passenger Request"
// @Success 201 {object} dto.PassengerResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/passengers [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	req := dto.CreatePassengerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req, middleware.UserID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create passenger")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// Update edits a saved passenger
// @Summary Update a saved passenger
// @Tags Passengers
// @Accept json
// @Produce json
// @Param id path string true "Passenger ID"
// @Param request body dto.UpdatePassengerRequest true "Update Passenger Request"
// @Success 200 {object} response.Message "Passenger updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/passengers/{id} [put]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Update")
	defer scope.End()

	req := dto.UpdatePassengerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Update(ctx, req, middleware.UserID(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update passenger")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Passenger updated")
}

// Delete removes a saved passenger
// @Summary Delete a saved passenger
// @Tags Passengers
// @Produce json
// @Param id path string true "Passenger ID"
// @Success 200 {object} response.Message "Passenger deleted"
// @Failure 404 {object} response.Error
// @Router /v1/passengers/{id} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Delete")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, middleware.UserID(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete passenger")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Passenger deleted")
}
