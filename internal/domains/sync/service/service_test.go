package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"innsync/config"
	otelMocks "innsync/infras/otel/mocks"
	"innsync/infras/pms"
	pmsMocks "innsync/infras/pms/mocks"
	bookingMocks "innsync/internal/domains/booking/mocks"
	bookingModel "innsync/internal/domains/booking/model"
	guestMocks "innsync/internal/domains/guest/mocks"
	roomMocks "innsync/internal/domains/room/mocks"
	roomTypeMocks "innsync/internal/domains/roomtype/mocks"
	syncMocks "innsync/internal/domains/sync/mocks"
	"innsync/internal/domains/sync/service"
	"innsync/shared/cache"
	cacheMocks "innsync/shared/cache/mocks"
)

const sinceCursor = "2025-03-01T00:00:00Z"

type reportRecorder struct {
	mu      sync.Mutex
	rows    []service.ReportRow
	flushes int
}

func (r *reportRecorder) Append(row service.ReportRow) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, row)
}

func (r *reportRecorder) Flush(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flushes++

	return nil
}

func (r *reportRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = nil
}

type engineFixture struct {
	pms      *pmsMocks.MockClient
	bookings *bookingMocks.MockBooking
	rooms    *roomMocks.MockRoom
	types    *roomTypeMocks.MockRoomType
	guests   *guestMocks.MockGuest
	logs     *syncMocks.MockSyncLog
	report   *reportRecorder
	service  service.Sync
}

func newEngineFixture(t *testing.T, chunkSize int) *engineFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.PMS.ChunkSize = chunkSize
	cfg.PMS.DefaultSinceHours = 24

	f := &engineFixture{
		pms:      pmsMocks.NewMockClient(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		types:    roomTypeMocks.NewMockRoomType(ctrl),
		guests:   guestMocks.NewMockGuest(ctrl),
		logs:     syncMocks.NewMockSyncLog(ctrl),
		report:   &reportRecorder{},
	}

	// Audit writes are asserted through summaries, not call counts.
	f.logs.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	f.service = service.New(
		cfg,
		f.pms,
		cache.NewEntityCache(cacheMocks.NewInMemoryCache(), 3600),
		cacheMocks.NewInMemoryCache(),
		f.bookings,
		f.rooms,
		f.types,
		f.guests,
		f.logs,
		f.report,
		otelMocks.NewOtel(),
	)

	return f
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }

func upstreamBooking(id int64, guestIDs ...int64) pms.Booking {
	return pms.Booking{
		ID:         id,
		ExternalID: strPtr(fmt.Sprintf("EXT-%d", id)),
		RoomID:     201,
		GuestIDs:   guestIDs,
		Arrival:    strPtr("2025-03-01"),
		Departure:  strPtr("2025-03-05"),
		Status:     strPtr("confirmed"),
	}
}

func upstreamRoom() pms.Room {
	return pms.Room{
		ID:         201,
		Number:     strPtr("201A"),
		Floor:      intPtr(2),
		RoomTypeID: int64Ptr(301),
	}
}

func upstreamRoomType() pms.RoomType {
	return pms.RoomType{
		ID:          301,
		Name:        strPtr("Deluxe"),
		Description: strPtr("Sea view"),
	}
}

func upstreamGuest(id int64, first, last string) pms.Guest {
	return pms.Guest{
		ID:        id,
		FirstName: strPtr(first),
		LastName:  strPtr(last),
	}
}

func TestSyncService_Run_StagesAndCommitsBooking(t *testing.T) {
	f := newEngineFixture(t, 100)
	ctx := context.Background()

	f.pms.EXPECT().ListChangedBookingIDs(gomock.Any(), sinceCursor).Return([]int64{1001}, nil)
	f.pms.EXPECT().GetBooking(gomock.Any(), int64(1001)).Return(upstreamBooking(1001, 401), true)
	f.pms.EXPECT().GetRoom(gomock.Any(), int64(201)).Return(upstreamRoom(), true)
	f.pms.EXPECT().GetRoomType(gomock.Any(), int64(301)).Return(upstreamRoomType(), true)
	f.pms.EXPECT().GetGuest(gomock.Any(), int64(401)).Return(upstreamGuest(401, "John", "Doe"), true)

	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

	var committed []bookingModel.Booking

	f.rooms.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(1)).Return(nil)
	f.types.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(1)).Return(nil)
	f.guests.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(1)).Return(nil)
	f.bookings.EXPECT().
		UpsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, models []bookingModel.Booking) error {
			committed = models

			return nil
		})

	summary, err := f.service.Run(ctx, sinceCursor)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Discovered)
	assert.Equal(t, 1, summary.Synced)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)

	require.Len(t, committed, 1)
	assert.Equal(t, int64(1001), committed[0].ID)
	assert.Equal(t, int64(201), committed[0].RoomID)
	assert.Equal(t, []int64{401}, []int64(committed[0].GuestIDs))
	require.NotNil(t, committed[0].CheckIn)
	assert.Equal(t, "2025-03-01", committed[0].CheckIn.Format("2006-01-02"))

	require.Len(t, f.report.rows, 1)
	assert.Equal(t, "John Doe", f.report.rows[0].Guests)
	assert.Equal(t, "Deluxe", f.report.rows[0].RoomTypeName)
	assert.Equal(t, 1, f.report.flushes)
}

func TestSyncService_Run_MissingGuestRejectsWholeBooking(t *testing.T) {
	f := newEngineFixture(t, 100)
	ctx := context.Background()

	f.pms.EXPECT().ListChangedBookingIDs(gomock.Any(), sinceCursor).Return([]int64{1001}, nil)
	f.pms.EXPECT().GetBooking(gomock.Any(), int64(1001)).Return(upstreamBooking(1001, 401, 402), true)
	f.pms.EXPECT().GetRoom(gomock.Any(), int64(201)).Return(upstreamRoom(), true)
	f.pms.EXPECT().GetRoomType(gomock.Any(), int64(301)).Return(upstreamRoomType(), true)
	f.pms.EXPECT().GetGuest(gomock.Any(), int64(401)).Return(upstreamGuest(401, "John", "Doe"), true)
	f.pms.EXPECT().GetGuest(gomock.Any(), int64(402)).Return(pms.Guest{}, false)

	// Nothing reaches the staging maps, not even the resolved guest.
	f.rooms.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)
	f.types.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)
	f.guests.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)
	f.bookings.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)

	summary, err := f.service.Run(ctx, sinceCursor)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Discovered)
	assert.Equal(t, 0, summary.Synced)
	assert.Equal(t, 1, summary.Failed)
	assert.Empty(t, f.report.rows)
}

func TestSyncService_Run_SecondRunSkipsUnchangedBooking(t *testing.T) {
	f := newEngineFixture(t, 100)
	ctx := context.Background()

	f.pms.EXPECT().ListChangedBookingIDs(gomock.Any(), sinceCursor).Return([]int64{1001}, nil).Times(2)
	// The entity cache serves the second run; every upstream entity is fetched once.
	f.pms.EXPECT().GetBooking(gomock.Any(), int64(1001)).Return(upstreamBooking(1001, 401), true)
	f.pms.EXPECT().GetRoom(gomock.Any(), int64(201)).Return(upstreamRoom(), true)
	f.pms.EXPECT().GetRoomType(gomock.Any(), int64(301)).Return(upstreamRoomType(), true)
	f.pms.EXPECT().GetGuest(gomock.Any(), int64(401)).Return(upstreamGuest(401, "John", "Doe"), true)

	var stored bookingModel.Booking

	f.bookings.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, _ ...string) (bookingModel.Booking, error) {
			return stored, nil
		}).
		Times(2)

	f.rooms.EXPECT().UpsertBulk(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.types.EXPECT().UpsertBulk(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.guests.EXPECT().UpsertBulk(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.bookings.EXPECT().
		UpsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, models []bookingModel.Booking) error {
			if len(models) > 0 {
				stored = models[0]
			}

			return nil
		}).
		Times(2)

	first, err := f.service.Run(ctx, sinceCursor)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Synced)
	assert.Equal(t, 0, first.Skipped)

	second, err := f.service.Run(ctx, sinceCursor)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Synced)
	assert.Equal(t, 1, second.Skipped)
	assert.Equal(t, 0, second.Failed)
}

func TestSyncService_Run_BookingUpsertFailureIsolatedToChunk(t *testing.T) {
	f := newEngineFixture(t, 100)
	ctx := context.Background()

	f.pms.EXPECT().ListChangedBookingIDs(gomock.Any(), sinceCursor).Return([]int64{1001}, nil)
	f.pms.EXPECT().GetBooking(gomock.Any(), int64(1001)).Return(upstreamBooking(1001, 401), true)
	f.pms.EXPECT().GetRoom(gomock.Any(), int64(201)).Return(upstreamRoom(), true)
	f.pms.EXPECT().GetRoomType(gomock.Any(), int64(301)).Return(upstreamRoomType(), true)
	f.pms.EXPECT().GetGuest(gomock.Any(), int64(401)).Return(upstreamGuest(401, "John", "Doe"), true)

	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

	// The other entity kinds still land when the booking upsert fails.
	f.rooms.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(1)).Return(nil)
	f.types.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(1)).Return(nil)
	f.guests.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(1)).Return(nil)
	f.bookings.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(1)).Return(errors.New("deadlock detected"))

	summary, err := f.service.Run(ctx, sinceCursor)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Synced)
	assert.Equal(t, 1, summary.Failed)
}

func TestSyncService_Run_ListFailureAbortsRun(t *testing.T) {
	f := newEngineFixture(t, 100)
	ctx := context.Background()

	f.pms.EXPECT().ListChangedBookingIDs(gomock.Any(), sinceCursor).Return(nil, errors.New("connection refused"))

	_, err := f.service.Run(ctx, sinceCursor)
	require.Error(t, err)
}

func TestSyncService_Run_InvalidBookingDataFails(t *testing.T) {
	tests := []struct {
		name    string
		booking pms.Booking
		ok      bool
	}{
		{
			name:    "booking absent upstream",
			booking: pms.Booking{},
			ok:      false,
		},
		{
			name:    "booking without guests",
			booking: upstreamBooking(1001),
			ok:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t, 100)
			ctx := context.Background()

			f.pms.EXPECT().ListChangedBookingIDs(gomock.Any(), sinceCursor).Return([]int64{1001}, nil)
			f.pms.EXPECT().GetBooking(gomock.Any(), int64(1001)).Return(tt.booking, tt.ok)

			f.rooms.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)
			f.types.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)
			f.guests.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)
			f.bookings.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)

			summary, err := f.service.Run(ctx, sinceCursor)
			require.NoError(t, err)

			assert.Equal(t, 1, summary.Failed)
			assert.Equal(t, 0, summary.Synced)
		})
	}
}

func TestSyncService_Run_MissingRoomFails(t *testing.T) {
	f := newEngineFixture(t, 100)
	ctx := context.Background()

	f.pms.EXPECT().ListChangedBookingIDs(gomock.Any(), sinceCursor).Return([]int64{1001}, nil)
	f.pms.EXPECT().GetBooking(gomock.Any(), int64(1001)).Return(upstreamBooking(1001, 401), true)
	f.pms.EXPECT().GetRoom(gomock.Any(), int64(201)).Return(pms.Room{}, false)

	f.rooms.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)
	f.types.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)
	f.guests.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)
	f.bookings.EXPECT().UpsertBulk(gomock.Any(), gomock.Len(0)).Return(nil)

	summary, err := f.service.Run(ctx, sinceCursor)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
}

func TestSyncService_Run_ProcessesInChunks(t *testing.T) {
	f := newEngineFixture(t, 100)
	ctx := context.Background()

	ids := make([]int64, 0, 150)
	for i := int64(1); i <= 150; i++ {
		ids = append(ids, 1000+i)
	}

	f.pms.EXPECT().ListChangedBookingIDs(gomock.Any(), sinceCursor).Return(ids, nil)
	f.pms.EXPECT().
		GetBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (pms.Booking, bool) {
			return upstreamBooking(id, 401), true
		}).
		Times(150)
	f.pms.EXPECT().GetRoom(gomock.Any(), int64(201)).Return(upstreamRoom(), true)
	f.pms.EXPECT().GetRoomType(gomock.Any(), int64(301)).Return(upstreamRoomType(), true)
	f.pms.EXPECT().GetGuest(gomock.Any(), int64(401)).Return(upstreamGuest(401, "John", "Doe"), true)

	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil).Times(150)

	f.rooms.EXPECT().UpsertBulk(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.types.EXPECT().UpsertBulk(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.guests.EXPECT().UpsertBulk(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var batchSizes []int

	f.bookings.EXPECT().
		UpsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, models []bookingModel.Booking) error {
			batchSizes = append(batchSizes, len(models))

			return nil
		}).
		Times(2)

	summary, err := f.service.Run(ctx, sinceCursor)
	require.NoError(t, err)

	assert.Equal(t, 150, summary.Discovered)
	assert.Equal(t, 150, summary.Synced)
	assert.Equal(t, []int{100, 50}, batchSizes)
	assert.Equal(t, 2, f.report.flushes)
	assert.Len(t, f.report.rows, 150)
}
