package cache

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// EntityKind namespaces cached upstream entities.
type EntityKind string

const (
	KindBooking  EntityKind = "booking"
	KindRoom     EntityKind = "room"
	KindRoomType EntityKind = "room_type"
	KindGuest    EntityKind = "guest"
)

// EntityCache memoizes upstream fetches keyed by (kind, id). A miss runs the fetch
// exactly once per key across concurrent callers (single-flight) and stores the
// result for the TTL window, including a negative entry when the entity was absent
// upstream, so a known-failing lookup is not refetched within the window.
type EntityCache struct {
	backend RedisCache
	group   singleflight.Group
	ttl     int
}

func NewEntityCache(backend RedisCache, ttlSeconds int) *EntityCache {
	return &EntityCache{
		backend: backend,
		ttl:     ttlSeconds,
	}
}

// entry wraps the cached value so an absent result is itself representable.
type entry[T any] struct {
	Value T    `json:"value"`
	Found bool `json:"found"`
}

// Remember returns the cached value for (kind, id) or populates it via fetch.
// The bool mirrors the fetch contract: false means the entity is absent upstream.
func Remember[T any](ctx context.Context, ec *EntityCache, kind EntityKind, id int64, fetch func(ctx context.Context) (T, bool)) (T, bool) {
	// The pms prefix keeps upstream snapshots apart from response caches.
	key := fmt.Sprintf("pms:%s:%d", kind, id)

	result, err, _ := ec.group.Do(key, func() (any, error) {
		var cached entry[T]

		if getErr := ec.backend.Get(ctx, key, &cached); getErr == nil {
			return cached, nil
		}

		value, found := fetch(ctx)
		cached = entry[T]{Value: value, Found: found}

		if saveErr := ec.backend.Save(ctx, key, cached, ec.ttl); saveErr != nil {
			log.Warn().Err(saveErr).Str("key", key).Msg("failed to store entity cache entry")
		}

		return cached, nil
	})
	if err != nil {
		var zero T

		return zero, false
	}

	typed, ok := result.(entry[T])
	if !ok {
		var zero T

		return zero, false
	}

	return typed.Value, typed.Found
}
