package di

import (
	"innsync/config"
	"innsync/shared/cache"
)

func provideEntityCache(cfg *config.Config, backend cache.RedisCache) *cache.EntityCache {
	return cache.NewEntityCache(backend, cfg.PMS.EntityCacheTTL)
}
