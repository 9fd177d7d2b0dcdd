//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"innsync/config"
	"innsync/infras/kafka"
	"innsync/infras/otel"
	"innsync/infras/pms"
	"innsync/infras/postgres"
	"innsync/infras/redis"
	"innsync/infras/s3"
	"innsync/shared/cache"
	"innsync/transport/http"
	"innsync/transport/http/middleware"
	"innsync/transport/http/router"

	bookingRepository "innsync/internal/domains/booking/repository"
	bookingService "innsync/internal/domains/booking/service"
	guestRepository "innsync/internal/domains/guest/repository"
	roomRepository "innsync/internal/domains/room/repository"
	roomTypeRepository "innsync/internal/domains/roomtype/repository"
	syncRepository "innsync/internal/domains/sync/repository"
	syncService "innsync/internal/domains/sync/service"

	bookingHandler "innsync/internal/handlers/booking"
	syncHandler "innsync/internal/handlers/sync"
	syncWorker "innsync/internal/workers/sync"
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
	pms.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	provideEntityCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var syncDomain = wire.NewSet(
	roomRepository.New,
	roomTypeRepository.New,
	guestRepository.New,
	syncRepository.New,
	syncService.NewReportWriter,
	syncService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	syncDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	syncHandler.New,
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

func InitializeSyncWorker() *syncWorker.Worker {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		syncWorker.New,
	)

	return &syncWorker.Worker{}
}

func InitializeSyncService() syncService.Sync {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
	)

	return nil
}
