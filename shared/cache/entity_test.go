package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"innsync/shared/cache"
	"innsync/shared/cache/mocks"
)

type fakeEntity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestEntityCache_Remember(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches once then serves from cache", func(t *testing.T) {
		entityCache := cache.NewEntityCache(mocks.NewInMemoryCache(), 3600)

		var calls int32

		fetch := func(_ context.Context) (fakeEntity, bool) {
			atomic.AddInt32(&calls, 1)

			return fakeEntity{ID: 42, Name: "Deluxe"}, true
		}

		for range 3 {
			value, found := cache.Remember(ctx, entityCache, cache.KindRoomType, 42, fetch)

			assert.True(t, found)
			assert.Equal(t, int64(42), value.ID)
			assert.Equal(t, "Deluxe", value.Name)
		}

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("caches negative result", func(t *testing.T) {
		entityCache := cache.NewEntityCache(mocks.NewInMemoryCache(), 3600)

		var calls int32

		fetch := func(_ context.Context) (fakeEntity, bool) {
			atomic.AddInt32(&calls, 1)

			return fakeEntity{}, false
		}

		for range 3 {
			_, found := cache.Remember(ctx, entityCache, cache.KindGuest, 7, fetch)

			assert.False(t, found)
		}

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("distinct kinds do not collide on id", func(t *testing.T) {
		entityCache := cache.NewEntityCache(mocks.NewInMemoryCache(), 3600)

		room, _ := cache.Remember(ctx, entityCache, cache.KindRoom, 5, func(_ context.Context) (fakeEntity, bool) {
			return fakeEntity{ID: 5, Name: "room"}, true
		})
		guest, _ := cache.Remember(ctx, entityCache, cache.KindGuest, 5, func(_ context.Context) (fakeEntity, bool) {
			return fakeEntity{ID: 5, Name: "guest"}, true
		})

		assert.Equal(t, "room", room.Name)
		assert.Equal(t, "guest", guest.Name)
	})

	t.Run("concurrent misses collapse to a single fetch", func(t *testing.T) {
		entityCache := cache.NewEntityCache(mocks.NewInMemoryCache(), 3600)

		var calls int32

		release := make(chan struct{})
		fetch := func(_ context.Context) (fakeEntity, bool) {
			atomic.AddInt32(&calls, 1)
			<-release

			return fakeEntity{ID: 9}, true
		}

		var wg sync.WaitGroup

		for range 5 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, found := cache.Remember(ctx, entityCache, cache.KindBooking, 9, fetch)
				assert.True(t, found)
			}()
		}

		// Give the goroutines time to pile onto the same key before releasing.
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}
