package catalog

import (
	"net/http"
	"tatkal/infras/otel"
	availabilityService "tatkal/internal/domains/availability/service"
	"tatkal/internal/domains/catalog/model/dto"
	"tatkal/internal/domains/catalog/service"
	"tatkal/shared/constant"
	"tatkal/shared/failure"
	"tatkal/shared/validator"
	"tatkal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Catalog
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Catalog, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

// Router mounts the read side of the catalog plus the availability quote.
func (handler *Handler) Router(r chi.Router) {
	r.Route("/trains", func(r chi.Router) {
		r.Get("/", handler.GetAll)
		r.Get("/search", handler.Search)
		r.Get("/availability", handler.Availability)
		r.Get("/{id}", handler.Get)
	})
}

// AdminRouter mounts catalog writes, admin-only.
func (handler *Handler) AdminRouter(r chi.Router) {
	r.Post("/trains", handler.Create)
	r.Delete("/trains/{id}", handler.Delete)
}

// GetAll lists the whole catalog
// @Summary List all trains
// @Tags Trains
// @Produce json
// @Success 200 {object} dto.GetTrainsResponse
// @Router /v1/trains [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAll")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list trains")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Search filters trains by route
// @Summary Search trains by route
// @Tags Trains
// @Produce json
// @Param source query string true "Source station"
// @Param destination query string true "Destination station"
// @Success 200 {object} dto.GetTrainsResponse
// @Failure 400 {object} response.Error
// @Router /v1/trains/search [get]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	source := r.URL.Query().Get("source")
	destination := r.URL.Query().Get("destination")

	if source == "" || destination == "" {
		err := failure.BadRequestFromString("source and destination are required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, source, destination)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search trains")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Availability quotes seat availability for a class and quota
// @Summary Quote availability
// @Description Fabricated availability, fresh per request. Nothing is reserved.
// @Tags Trains
// @Produce json
// @Param class query string true "Travel class code"
// @Param quota query string false "Quota"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} response.Error
// @Router /v1/trains/availability [get]
func (handler *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Availability")
	defer scope.End()

	class := r.URL.Query().Get("class")
	quota := r.URL.Query().Get("quota")

	if class == "" {
		err := failure.BadRequestFromString("class is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if quota == "" {
		quota = "general"
	}

	res, err := handler.availability.Quote(ctx, class, quota)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get returns one train
// @Summary Get a train
// @Tags Trains
// @Produce json
// @Param id path string true "Train ID"
// @Success 200 {object} dto.TrainResponse
// @Failure 404 {object} response.Error
// @Router /v1/trains/{id} [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Get")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Create adds a train to the catalog
// @Summary Create a train
// @Description Admin only. Classes arrive as a comma-separated string.
// @Tags Trains
// @Accept json
// @Produce json
// @Param request body dto.CreateTrainRequest true "Create Train Request"
// @Success 201 {object} dto.TrainResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/trains [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	req := dto.CreateTrainRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create train")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// Delete removes a train from the catalog
// @Summary Delete a train
// @Description Admin only. Existing bookings keep their embedded train data.
// @Tags Trains
// @Produce json
// @Param id path string true "Train ID"
// @Success 200 {object} response.Message "Train deleted"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/trains/{id} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Delete")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete train")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Train deleted")
}
