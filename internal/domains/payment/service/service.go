package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tatkal/infras/otel"
	"tatkal/internal/domains/payment/model/dto"
	"tatkal/internal/domains/payment/repository"
	"tatkal/shared/constant"
	"tatkal/shared/failure"
)

type Payment interface {
	GetAll(ctx context.Context, userID string) (dto.GetPaymentMethodsResponse, error)
	Create(ctx context.Context, req dto.CreatePaymentMethodRequest, userID string) (dto.PaymentMethodResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type serviceImpl struct {
	repo repository.Payment
	otel otel.Otel
}

func New(repo repository.Payment, ot otel.Otel) Payment {
	return &serviceImpl{
		repo: repo,
		otel: ot,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, userID string) (res dto.GetPaymentMethodsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	methods, err := s.repo.List(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list payment methods")

		return res, fmt.Errorf("failed to list payment methods: %w", err)
	}

	res.FromModels(methods)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentMethodRequest, userID string) (res dto.PaymentMethodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	method := req.ToModel()

	if err = s.repo.Insert(ctx, userID, method); err != nil {
		log.Error().Err(err).Msg("failed to create payment method")

		return res, fmt.Errorf("failed to create payment method: %w", err)
	}

	res.FromModel(method)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	removed, err := s.repo.Remove(ctx, userID, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete payment method")

		return fmt.Errorf("failed to delete payment method: %w", err)
	}

	if removed == 0 {
		return failure.NotFound("payment method not found")
	}

	return nil
}
