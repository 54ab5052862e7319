//go:build wireinject
// +build wireinject

package di

import (
	"tatkal/config"
	"tatkal/infras/jwt"
	"tatkal/infras/otel"
	"tatkal/internal/bootstrap"
	"tatkal/shared/kvstore"
	"tatkal/transport/http"
	"tatkal/transport/http/middleware"
	"tatkal/transport/http/router"

	"github.com/google/wire"

	adminService "tatkal/internal/domains/admin/service"
	availabilityService "tatkal/internal/domains/availability/service"
	bookingGateway "tatkal/internal/domains/booking/gateway"
	bookingRepository "tatkal/internal/domains/booking/repository"
	bookingService "tatkal/internal/domains/booking/service"
	catalogRepository "tatkal/internal/domains/catalog/repository"
	catalogService "tatkal/internal/domains/catalog/service"
	identityRepository "tatkal/internal/domains/identity/repository"
	identityService "tatkal/internal/domains/identity/service"
	passengerRepository "tatkal/internal/domains/passenger/repository"
	passengerService "tatkal/internal/domains/passenger/service"
	paymentRepository "tatkal/internal/domains/payment/repository"
	paymentService "tatkal/internal/domains/payment/service"

	adminHandler "tatkal/internal/handlers/admin"
	authHandler "tatkal/internal/handlers/auth"
	bookingHandler "tatkal/internal/handlers/booking"
	catalogHandler "tatkal/internal/handlers/catalog"
	passengerHandler "tatkal/internal/handlers/passenger"
	paymentHandler "tatkal/internal/handlers/payment"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	kvstore.New,
	jwt.New,
	bookingGateway.NewSimulated,
)

var middlewares = wire.NewSet(
	middleware.NewAuthMiddleware,
)

var identityDomain = wire.NewSet(
	identityRepository.New,
	identityService.New,
)

var passengerDomain = wire.NewSet(
	passengerRepository.New,
	passengerService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	identityDomain,
	passengerDomain,
	paymentDomain,
	catalogDomain,
	availabilityDomain,
	bookingDomain,
	adminDomain,
	bootstrap.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	passengerHandler.New,
	paymentHandler.New,
	catalogHandler.New,
	bookingHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
