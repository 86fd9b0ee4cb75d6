//go:build wireinject
// +build wireinject

package di

import (
	"homestay/config"
	"homestay/infras/jwt"
	"homestay/infras/kafka"
	"homestay/infras/otel"
	"homestay/infras/postgres"
	"homestay/infras/redis"
	"homestay/infras/s3"
	"homestay/shared/cache"
	"homestay/transport/http"
	"homestay/transport/http/middleware"
	"homestay/transport/http/router"

	bookingRepository "homestay/internal/domains/booking/repository"
	bookingService "homestay/internal/domains/booking/service"
	homestayRepository "homestay/internal/domains/homestay/repository"
	homestayService "homestay/internal/domains/homestay/service"
	leadEvent "homestay/internal/domains/lead/event"
	leadRepository "homestay/internal/domains/lead/repository"
	leadService "homestay/internal/domains/lead/service"
	roomRepository "homestay/internal/domains/room/repository"
	roomService "homestay/internal/domains/room/service"
	packageRepository "homestay/internal/domains/tourpackage/repository"
	packageService "homestay/internal/domains/tourpackage/service"
	bookingHandler "homestay/internal/handlers/booking"
	homestayHandler "homestay/internal/handlers/homestay"
	leadHandler "homestay/internal/handlers/lead"
	roomHandler "homestay/internal/handlers/room"
	packageHandler "homestay/internal/handlers/tourpackage"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var homestayDomain = wire.NewSet(
	homestayRepository.New,
	homestayService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var leadDomain = wire.NewSet(
	leadRepository.New,
	leadRepository.NewFollowUp,
	leadService.New,
	leadEvent.NewPublisher,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewBookingRoom,
	bookingRepository.NewPayment,
	bookingService.NewAvailability,
	bookingService.New,
)

var packageDomain = wire.NewSet(
	packageRepository.New,
	packageRepository.NewItinerary,
	packageRepository.NewPricing,
	packageRepository.NewInclusion,
	packageRepository.NewCustomPackage,
	packageRepository.NewCustomItinerary,
	packageService.New,
	packageService.NewCustomPackage,
)

var domains = wire.NewSet(
	homestayDomain,
	roomDomain,
	leadDomain,
	bookingDomain,
	packageDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	homestayHandler.New,
	roomHandler.New,
	leadHandler.New,
	bookingHandler.New,
	packageHandler.New,
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

func InitializeConsumer() *leadEvent.Consumer {
	wire.Build(
		configurations,
		postgres.New,
		postgres.NewTransactor,
		otel.New,
		redis.New,
		kafka.New,
		sharedHelpers,
		homestayDomain,
		leadRepository.New,
		leadRepository.NewFollowUp,
		leadService.New,
		leadEvent.NewConsumer,
	)

	return &leadEvent.Consumer{}
}
