package pms_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innsync/config"
	"innsync/infras/otel/mocks"
	"innsync/infras/pms"
)

func newClient(t *testing.T, handler http.Handler, rateLimitDelayMS int) pms.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.PMS.BaseURL = server.URL
	cfg.PMS.TimeoutSeconds = 5
	cfg.PMS.MaxRetry = 1
	cfg.PMS.RateLimitDelayMS = rateLimitDelayMS

	return pms.New(cfg, mocks.NewOtel())
}

func TestClient_ListChangedBookingIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes mixed id payloads", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bookings", r.URL.Path)
			assert.Equal(t, "2025-03-01T00:00:00Z", r.URL.Query().Get("updated_at.gt"))

			w.Write([]byte(`{"data": [5, 5, "abc", "7", {"id": 9}, null, {"name": "x"}, 5]}`))
		}), 1)

		ids, err := client.ListChangedBookingIDs(ctx, "2025-03-01T00:00:00Z")
		require.NoError(t, err)

		assert.Equal(t, []int64{5, 7, 9}, ids)
	})

	t.Run("empty listing yields empty slice", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"data": []}`))
		}), 1)

		ids, err := client.ListChangedBookingIDs(ctx, "2025-03-01T00:00:00Z")
		require.NoError(t, err)

		assert.Empty(t, ids)
	})

	t.Run("non-200 listing is an error", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}), 1)

		_, err := client.ListChangedBookingIDs(ctx, "2025-03-01T00:00:00Z")
		require.Error(t, err)
	})
}

func TestClient_GetBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("returns booking payload", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bookings/1001", r.URL.Path)

			w.Write([]byte(`{"id": 1001, "room_id": 201, "guest_ids": [401, 402], "arrival_date": "2025-03-01", "status": "confirmed"}`))
		}), 1)

		booking, ok := client.GetBooking(ctx, 1001)
		require.True(t, ok)

		assert.Equal(t, int64(1001), booking.ID)
		assert.Equal(t, int64(201), booking.RoomID)
		assert.Equal(t, []int64{401, 402}, booking.GuestIDs)
		require.NotNil(t, booking.Status)
		assert.Equal(t, "confirmed", *booking.Status)
	})

	t.Run("not found is absent, not an error", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}), 1)

		_, ok := client.GetBooking(ctx, 1001)
		assert.False(t, ok)
	})

	t.Run("malformed body is absent", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{`))
		}), 1)

		_, ok := client.GetBooking(ctx, 1001)
		assert.False(t, ok)
	})

	t.Run("zero id payload is absent", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{}`))
		}), 1)

		_, ok := client.GetBooking(ctx, 1001)
		assert.False(t, ok)
	})
}

func TestClient_GetEntities(t *testing.T) {
	ctx := context.Background()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rooms/201":
			w.Write([]byte(`{"id": 201, "number": "201A", "floor": 2, "room_type_id": 301}`))
		case "/room-types/301":
			w.Write([]byte(`{"id": 301, "name": "Deluxe"}`))
		case "/guests/401":
			w.Write([]byte(`{"id": 401, "first_name": "John", "last_name": "Doe"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}), 1)

	room, ok := client.GetRoom(ctx, 201)
	require.True(t, ok)
	require.NotNil(t, room.RoomTypeID)
	assert.Equal(t, int64(301), *room.RoomTypeID)

	roomType, ok := client.GetRoomType(ctx, 301)
	require.True(t, ok)
	require.NotNil(t, roomType.Name)
	assert.Equal(t, "Deluxe", *roomType.Name)

	guest, ok := client.GetGuest(ctx, 401)
	require.True(t, ok)
	require.NotNil(t, guest.FirstName)
	assert.Equal(t, "John", *guest.FirstName)

	_, ok = client.GetGuest(ctx, 999)
	assert.False(t, ok)
}

func TestClient_RateLimiterSpacesCalls(t *testing.T) {
	ctx := context.Background()

	var hits int32

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"data": []}`))
	}), 50)

	start := time.Now()

	for range 3 {
		_, err := client.ListChangedBookingIDs(ctx, "2025-03-01T00:00:00Z")
		require.NoError(t, err)
	}

	elapsed := time.Since(start)

	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	// Burst of one: the second and third calls each wait out the interval.
	assert.GreaterOrEqual(t, elapsed, 90*time.Millisecond)
}
