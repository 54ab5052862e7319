package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tatkal/infras/otel"
	"tatkal/internal/domains/passenger/model"
	"tatkal/internal/domains/passenger/model/dto"
	"tatkal/internal/domains/passenger/repository"
	"tatkal/shared/constant"
	"tatkal/shared/failure"
)

type Passenger interface {
	GetAll(ctx context.Context, userID string) (dto.GetPassengersResponse, error)
	Create(ctx context.Context, req dto.CreatePassengerRequest, userID string) (dto.PassengerResponse, error)
	Update(ctx context.Context, req dto.UpdatePassengerRequest, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
}

type serviceImpl struct {
	repo repository.Passenger
	otel otel.Otel
}

func New(repo repository.Passenger, ot otel.Otel) Passenger {
	return &serviceImpl{
		repo: repo,
		otel: ot,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, userID string) (res dto.GetPassengersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	passengers, err := s.repo.List(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list passengers")

		return res, fmt.Errorf("failed to list passengers: %w", err)
	}

	res.FromModels(passengers)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePassengerRequest, userID string) (res dto.PassengerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	passenger := req.ToModel()

	if err = s.repo.Insert(ctx, userID, passenger); err != nil {
		log.Error().Err(err).Msg("failed to create passenger")

		return res, fmt.Errorf("failed to create passenger: %w", err)
	}

	res.FromModel(passenger)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePassengerRequest, userID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	berth := req.Berth
	if berth == "" {
		berth = model.BerthNoPreference
	}

	matched, err := s.repo.Update(ctx, userID, id, func(p *model.Passenger) {
		p.Name = req.Name
		p.Age = req.Age
		p.Gender = req.Gender
		p.Berth = berth
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update passenger")

		return fmt.Errorf("failed to update passenger: %w", err)
	}

	if matched == 0 {
		return failure.NotFound("passenger not found")
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	removed, err := s.repo.Remove(ctx, userID, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete passenger")

		return fmt.Errorf("failed to delete passenger: %w", err)
	}

	if removed == 0 {
		return failure.NotFound("passenger not found")
	}

	return nil
}
