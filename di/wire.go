//go:build wireinject
// +build wireinject

package di

import (
	"livecity/config"
	"livecity/infras/kafka"
	"livecity/infras/notifier"
	"livecity/infras/otel"
	"livecity/infras/postgres"
	"livecity/infras/redis"
	"livecity/infras/s3"
	"livecity/internal/domains/booking/archive"
	"livecity/internal/domains/booking/validation"
	"livecity/internal/domains/pricing"
	"livecity/internal/domains/reminder/worker"
	bookingHandler "livecity/internal/handlers/booking"
	reminderHandler "livecity/internal/handlers/reminder"
	"livecity/shared/cache"
	"livecity/shared/events"
	"livecity/transport/http"
	"livecity/transport/http/middleware"
	"livecity/transport/http/router"

	bookingRepository "livecity/internal/domains/booking/repository"
	bookingService "livecity/internal/domains/booking/service"
	reminderService "livecity/internal/domains/reminder/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
	notifier.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuth,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.New,
)

var bookingDomain = wire.NewSet(
	pricing.New,
	validation.PolicyFromConfig,
	validation.New,
	archive.New,
	bookingRepository.New,
	bookingService.New,
)

var reminderDomain = wire.NewSet(
	reminderService.New,
	worker.New,
)

var domains = wire.NewSet(
	bookingDomain,
	reminderDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	reminderHandler.New,
	router.New,
)

func InitializeApp() (*App, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		NewApp,
	)

	return &App{}, nil
}
