package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tatkal/infras/otel"
	"tatkal/internal/domains/admin/model/dto"
	bookingDto "tatkal/internal/domains/booking/model/dto"
	bookingRepo "tatkal/internal/domains/booking/repository"
	bookingService "tatkal/internal/domains/booking/service"
	identityService "tatkal/internal/domains/identity/service"
	"tatkal/shared/constant"
	"tatkal/shared/failure"
)

// Admin aggregates across every tenant ledger. All reads are plain sequential
// scans with no snapshot isolation: numbers can be transiently inconsistent
// with each other while bookings are being written.
type Admin interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
	ListAllBookings(ctx context.Context) (dto.GetAllBookingsResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID string) error
	DeleteUser(ctx context.Context, userID string) error
}

type serviceImpl struct {
	identity identityService.Identity
	bookings bookingRepo.Booking
	ledger   bookingService.Booking
	otel     otel.Otel
}

func New(identity identityService.Identity, bookings bookingRepo.Booking, ledger bookingService.Booking, ot otel.Otel) Admin {
	return &serviceImpl{
		identity: identity,
		bookings: bookings,
		ledger:   ledger,
		otel:     ot,
	}
}

// requireAdmin enforces the admin role at the service boundary, independent
// of the HTTP middleware doing the same.
func requireAdmin(ctx context.Context) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleAdmin {
		return failure.ForbiddenError
	}

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = requireAdmin(ctx); err != nil {
		return res, err
	}

	users, err := s.identity.ListUsers(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list users: %w", err)
	}

	for _, user := range users {
		if user.Role != constant.RoleAdmin {
			res.TotalUsers++
		}

		bookings, err := s.bookings.List(ctx, user.ID)
		if err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to read ledger for stats")

			return res, fmt.Errorf("failed to read ledger: %w", err)
		}

		for _, b := range bookings {
			res.TotalBookings++

			switch b.Status {
			case constant.BookingStatusConfirmed:
				res.ConfirmedBookings++
				res.TotalRevenue += b.Fare
			case constant.BookingStatusCancelled:
				res.CancelledBookings++
			}
		}
	}

	return res, nil
}

func (s *serviceImpl) ListAllBookings(ctx context.Context) (res dto.GetAllBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = requireAdmin(ctx); err != nil {
		return res, err
	}

	users, err := s.identity.ListUsers(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list users: %w", err)
	}

	res.Bookings = []dto.AdminBookingResponse{}

	for _, user := range users {
		bookings, err := s.bookings.List(ctx, user.ID)
		if err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to read ledger")

			return res, fmt.Errorf("failed to read ledger: %w", err)
		}

		for _, b := range bookings {
			var br bookingDto.BookingResponse
			br.FromModel(b)

			res.Bookings = append(res.Bookings, dto.AdminBookingResponse{
				BookingResponse: br,
				UserID:          user.ID,
				UserName:        user.Name,
				UserEmail:       user.Email,
			})
		}
	}

	res.TotalData = len(res.Bookings)

	return res, nil
}

func (s *serviceImpl) CancelBooking(ctx context.Context, userID, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = requireAdmin(ctx); err != nil {
		return err
	}

	return s.ledger.Cancel(ctx, userID, bookingID)
}

func (s *serviceImpl) DeleteUser(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = requireAdmin(ctx); err != nil {
		return err
	}

	return s.identity.DeleteUser(ctx, userID)
}
