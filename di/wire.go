//go:build wireinject
// +build wireinject

package di

import (
	"homestay/config"
	"homestay/infras/jwt"
	"homestay/infras/otel"
	"homestay/infras/redis"
	"homestay/infras/sheets"
	"homestay/shared/cache"
	"homestay/transport/http"
	"homestay/transport/http/middleware"
	"homestay/transport/http/router"

	scheduleRepository "homestay/internal/domains/schedule/repository"

	authService "homestay/internal/domains/auth/service"
	availabilityService "homestay/internal/domains/availability/service"
	bookingService "homestay/internal/domains/booking/service"
	roomService "homestay/internal/domains/room/service"

	authHandler "homestay/internal/handlers/auth"
	availabilityHandler "homestay/internal/handlers/availability"
	bookingHandler "homestay/internal/handlers/booking"
	roomHandler "homestay/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	sheets.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
)

var roomDomain = wire.NewSet(
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	scheduleDomain,
	roomDomain,
	bookingDomain,
	availabilityDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
