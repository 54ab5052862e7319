package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tatkal/config"
	"tatkal/infras/otel"
	"tatkal/internal/domains/booking/gateway"
	"tatkal/internal/domains/booking/model"
	"tatkal/internal/domains/booking/model/dto"
	"tatkal/internal/domains/booking/repository"
	paymentRepo "tatkal/internal/domains/payment/repository"
	"tatkal/shared/constant"
	"tatkal/shared/failure"
	"tatkal/shared/timezone"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, userID string) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, userID, bookingID string) error
}

type serviceImpl struct {
	repo     repository.Booking
	payments paymentRepo.Payment
	gateway  gateway.PaymentGateway
	pnr      *model.PNRGenerator
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Booking, payments paymentRepo.Payment, gw gateway.PaymentGateway, cfg *config.Config, ot otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		payments: payments,
		gateway:  gw,
		pnr:      model.NewPNRGenerator(),
		cfg:      cfg,
		otel:     ot,
	}
}

// Create runs the full booking sequence: validate, check quoted capacity,
// require a payment method, charge, then append to the ledger. The charge is
// the only suspension point; a declined charge writes nothing.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	for _, p := range req.Passengers {
		if p.Name == "" {
			return res, failure.BadRequestFromString("passenger name is required")
		}

		if p.Age < 1 || p.Age > 120 {
			return res, failure.BadRequestFromString("passenger age must be between 1 and 120")
		}
	}

	available, err := req.AvailableValue()
	if err != nil {
		return res, failure.BadRequestFromString("available must be numeric")
	}

	farePerSeat, err := req.FareValue()
	if err != nil {
		return res, failure.BadRequestFromString("fare must be numeric")
	}

	if len(req.Passengers) > available {
		return res, failure.CapacityExceeded
	}

	methods, err := s.payments.List(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list payment methods")

		return res, fmt.Errorf("failed to list payment methods: %w", err)
	}

	if len(methods) == 0 {
		return res, failure.NoPaymentMethod
	}

	totalFare := farePerSeat * len(req.Passengers)

	outcome, err := s.gateway.Charge(ctx, totalFare)
	if err != nil {
		log.Error().Err(err).Msg("payment gateway failed")

		return res, fmt.Errorf("payment gateway failed: %w", err)
	}

	if outcome != gateway.Approved {
		return res, failure.PaymentDeclined
	}

	now := timezone.Now()
	pnr := s.pnr.Next(now)

	_, exists, err := s.repo.FindByPNR(ctx, userID, pnr)
	if err != nil {
		log.Error().Err(err).Msg("failed to check PNR uniqueness")

		return res, fmt.Errorf("failed to check PNR uniqueness: %w", err)
	}

	if exists {
		return res, failure.DuplicatePNR
	}

	booking := model.Booking{
		ID:          uuid.NewString(),
		PNR:         pnr,
		TrainID:     req.TrainID,
		TrainName:   req.TrainName,
		Source:      req.Source,
		Destination: req.Destination,
		Date:        req.Date,
		Class:       req.Class,
		Quota:       req.Quota,
		Passengers:  req.PassengerDetails(),
		Fare:        totalFare,
		Status:      constant.BookingStatusConfirmed,
		BookingDate: now,
	}

	if err = s.repo.Insert(ctx, userID, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	log.Info().
		Str("user_id", userID).
		Str("pnr", pnr).
		Int("fare", totalFare).
		Int("passengers", len(booking.Passengers)).
		Msg("booking confirmed")

	res.FromModel(booking)

	return res, nil
}

// GetAll returns the user's ledger, newest booking first.
func (s *serviceImpl) GetAll(ctx context.Context, userID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.List(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookingDate.After(bookings[j].BookingDate)
	})

	res.FromModels(bookings)

	return res, nil
}

// Cancel moves a confirmed booking to cancelled. Cancelling a booking that is
// already cancelled, or that does not exist, is a silent no-op: the end state
// the caller asked for already holds.
func (s *serviceImpl) Cancel(ctx context.Context, userID, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	matched, err := s.repo.UpdateStatus(ctx, userID, bookingID, constant.BookingStatusCancelled)
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	if matched == 0 {
		log.Debug().Str("booking_id", bookingID).Msg("cancel of unknown booking ignored")
	}

	return nil
}
