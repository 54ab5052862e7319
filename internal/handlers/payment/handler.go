package payment

import (
	"net/http"
	"tatkal/infras/otel"
	"tatkal/internal/domains/payment/model/dto"
	"tatkal/internal/domains/payment/service"
	"tatkal/shared/constant"
	"tatkal/shared/validator"
	"tatkal/transport/http/middleware"
	"tatkal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/payment-methods", func(r chi.Router) {
		r.Get("/", handler.GetAll)
		r.Post("/", handler.Create)
		r.Delete("/{id}", handler.Delete)
	})
}

// GetAll lists the user's payment methods
// @Summary List payment methods
// @Tags Payment Methods
// @Produce json
// @Success 200 {object} dto.GetPaymentMethodsResponse
// @Failure 401 {object} response.Error
// @Router /v1/payment-methods [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAll")
	defer scope.End()

	res, err := handler.service.GetAll(ctx, middleware.UserID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list payment methods")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Create adds a payment method; card numbers are stored masked
// @Summary Add a payment method
// @Tags Payment Methods
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentMethodRequest true "Create Payment Method Request"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/payment-methods [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	req := dto.CreatePaymentMethodRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req, middleware.UserID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment method")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// Delete removes a payment method
// @Summary Delete a payment method
// @Tags Payment Methods
// @Produce json
// @Param id path string true "Payment Method ID"
// @Success 200 {object} response.Message "Payment method deleted"
// @Failure 404 {object} response.Error
// @Router /v1/payment-methods/{id} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Delete")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, middleware.UserID(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete payment method")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Payment method deleted")
}
