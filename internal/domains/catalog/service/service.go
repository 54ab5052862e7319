package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tatkal/infras/otel"
	"tatkal/internal/domains/catalog/model"
	"tatkal/internal/domains/catalog/model/dto"
	"tatkal/internal/domains/catalog/repository"
	"tatkal/shared/constant"
	"tatkal/shared/failure"
)

type Catalog interface {
	SeedDefaults(ctx context.Context) error
	GetAll(ctx context.Context) (dto.GetTrainsResponse, error)
	Search(ctx context.Context, source, destination string) (dto.GetTrainsResponse, error)
	Get(ctx context.Context, id string) (dto.TrainResponse, error)
	Create(ctx context.Context, req dto.CreateTrainRequest) (dto.TrainResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Catalog
	otel otel.Otel
}

func New(repo repository.Catalog, ot otel.Otel) Catalog {
	return &serviceImpl{
		repo: repo,
		otel: ot,
	}
}

// defaultTrains is the static catalog shipped with the demo, written only
// when no trains key exists yet.
func defaultTrains() []model.Train {
	return []model.Train{
		{
			ID:            "12301",
			TrainNo:       "12301",
			Name:          "Rajdhani Express",
			Source:        "Delhi",
			Destination:   "Mumbai",
			DepartureTime: "16:00",
			ArrivalTime:   "08:30",
			Duration:      "16h 30m",
			Classes:       []string{"1A", "2A", "3A", "SL"},
		},
		{
			ID:            "12951",
			TrainNo:       "12951",
			Name:          "Mumbai Rajdhani",
			Source:        "Delhi",
			Destination:   "Mumbai",
			DepartureTime: "16:25",
			ArrivalTime:   "08:55",
			Duration:      "16h 30m",
			Classes:       []string{"1A", "2A", "3A"},
		},
		{
			ID:            "12259",
			TrainNo:       "12259",
			Name:          "Sealdah Duronto",
			Source:        "Delhi",
			Destination:   "Kolkata",
			DepartureTime: "22:40",
			ArrivalTime:   "08:00",
			Duration:      "9h 20m",
			Classes:       []string{"1A", "2A", "3A", "SL"},
		},
		{
			ID:            "12284",
			TrainNo:       "12284",
			Name:          "New Delhi - Howrah Duronto",
			Source:        "Delhi",
			Destination:   "Kolkata",
			DepartureTime: "22:50",
			ArrivalTime:   "08:30",
			Duration:      "9h 40m",
			Classes:       []string{"1A", "2A", "3A"},
		},
		{
			ID:            "12627",
			TrainNo:       "12627",
			Name:          "Tamil Nadu Express",
			Source:        "Delhi",
			Destination:   "Chennai",
			DepartureTime: "22:30",
			ArrivalTime:   "05:00",
			Duration:      "30h 30m",
			Classes:       []string{"1A", "2A", "3A", "SL"},
		},
		{
			ID:            "12621",
			TrainNo:       "12621",
			Name:          "Tamil Nadu Express",
			Source:        "Chennai",
			Destination:   "Delhi",
			DepartureTime: "22:15",
			ArrivalTime:   "04:45",
			Duration:      "30h 30m",
			Classes:       []string{"1A", "2A", "3A", "SL"},
		},
		{
			ID:            "12626",
			TrainNo:       "12626",
			Name:          "Karnataka Express",
			Source:        "Delhi",
			Destination:   "Bangalore",
			DepartureTime: "20:30",
			ArrivalTime:   "05:00",
			Duration:      "32h 30m",
			Classes:       []string{"1A", "2A", "3A", "SL"},
		},
		{
			ID:            "12628",
			TrainNo:       "12628",
			Name:          "Karnataka Express",
			Source:        "Bangalore",
			Destination:   "Delhi",
			DepartureTime: "20:00",
			ArrivalTime:   "04:30",
			Duration:      "32h 30m",
			Classes:       []string{"1A", "2A", "3A", "SL"},
		},
	}
}

// SeedDefaults writes the static catalog when the trains key is absent. Runs
// at every startup; an existing catalog, even an emptied one, is left alone.
func (s *serviceImpl) SeedDefaults(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SeedDefaults")
	defer scope.End()
	defer scope.TraceIfError(err)

	seeded, err := s.repo.Seeded(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to check catalog seed state")

		return fmt.Errorf("failed to check catalog seed state: %w", err)
	}

	if seeded {
		return nil
	}

	if err = s.repo.Replace(ctx, defaultTrains()); err != nil {
		log.Error().Err(err).Msg("failed to seed default trains")

		return fmt.Errorf("failed to seed default trains: %w", err)
	}

	log.Info().Int("trains", len(defaultTrains())).Msg("default train catalog seeded")

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTrainsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	trains, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list trains")

		return res, fmt.Errorf("failed to list trains: %w", err)
	}

	res.FromModels(trains)

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, source, destination string) (res dto.GetTrainsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	trains, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list trains")

		return res, fmt.Errorf("failed to list trains: %w", err)
	}

	matches := make([]model.Train, 0, len(trains))
	for _, t := range trains {
		if t.MatchesRoute(source, destination) {
			matches = append(matches, t)
		}
	}

	res.FromModels(matches)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TrainResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	train, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get train")

		return res, fmt.Errorf("failed to get train: %w", err)
	}

	if !found {
		return res, failure.NotFound("train not found")
	}

	res.FromModel(train)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTrainRequest) (res dto.TrainResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	train := req.ToModel()

	if len(train.Classes) == 0 {
		return res, failure.BadRequestFromString("classes must contain at least one class code")
	}

	if err = s.repo.Insert(ctx, train); err != nil {
		log.Error().Err(err).Msg("failed to create train")

		return res, fmt.Errorf("failed to create train: %w", err)
	}

	res.FromModel(train)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete train")

		return fmt.Errorf("failed to delete train: %w", err)
	}

	if removed == 0 {
		return failure.NotFound("train not found")
	}

	return nil
}
