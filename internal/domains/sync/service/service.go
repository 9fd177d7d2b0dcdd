package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"innsync/config"
	"innsync/infras/otel"
	"innsync/infras/pms"
	bookingModel "innsync/internal/domains/booking/model"
	bookingRepo "innsync/internal/domains/booking/repository"
	guestModel "innsync/internal/domains/guest/model"
	guestRepo "innsync/internal/domains/guest/repository"
	roomModel "innsync/internal/domains/room/model"
	roomRepo "innsync/internal/domains/room/repository"
	roomTypeModel "innsync/internal/domains/roomtype/model"
	roomTypeRepo "innsync/internal/domains/roomtype/repository"
	syncModel "innsync/internal/domains/sync/model"
	"innsync/internal/domains/sync/model/dto"
	syncRepo "innsync/internal/domains/sync/repository"
	"innsync/shared"
	"innsync/shared/cache"
	"innsync/shared/constant"
	gDto "innsync/shared/dto"
	"innsync/shared/timezone"
)

const defaultChunkSize = 100

// Sync drives one synchronization run against the PMS: discover the changed
// booking IDs since the cursor, fetch and cross-validate each booking's dependent
// entities, and commit validated records chunk by chunk. One booking's failure
// never aborts the chunk or the run; the audit log carries per-record outcomes.
type Sync interface {
	Run(ctx context.Context, since string) (dto.RunSummary, error)
	Logs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSyncLogsResponse, error)
}

type serviceImpl struct {
	cfg           *config.Config
	pms           pms.Client
	entityCache   *cache.EntityCache
	responseCache cache.RedisCache
	bookingRepo   bookingRepo.Booking
	roomRepo      roomRepo.Room
	roomTypeRepo  roomTypeRepo.RoomType
	guestRepo     guestRepo.Guest
	syncLogRepo   syncRepo.SyncLog
	report        ReportWriter
	otel          otel.Otel
}

func New(
	cfg *config.Config,
	pmsClient pms.Client,
	entityCache *cache.EntityCache,
	responseCache cache.RedisCache,
	bookings bookingRepo.Booking,
	rooms roomRepo.Room,
	roomTypes roomTypeRepo.RoomType,
	guests guestRepo.Guest,
	syncLogs syncRepo.SyncLog,
	report ReportWriter,
	otl otel.Otel,
) Sync {
	return &serviceImpl{
		cfg:           cfg,
		pms:           pmsClient,
		entityCache:   entityCache,
		responseCache: responseCache,
		bookingRepo:   bookings,
		roomRepo:      rooms,
		roomTypeRepo:  roomTypes,
		guestRepo:     guests,
		syncLogRepo:   syncLogs,
		report:        report,
		otel:          otl,
	}
}

func (s *serviceImpl) Run(ctx context.Context, since string) (summary dto.RunSummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sync.Run")
	defer scope.End()
	defer scope.TraceIfError(err)

	if since == "" {
		window := time.Duration(s.cfg.PMS.DefaultSinceHours) * time.Hour
		since = timezone.Now().Add(-window).Format(constant.DateFormat)
	}

	summary = dto.RunSummary{
		RunID: uuid.NewString(),
		Since: since,
	}

	log.Info().Str("run_id", summary.RunID).Str("since", since).Msg("Syncing bookings updated since cursor")
	s.syncLogRepo.Append(ctx, syncModel.ResourceTypeRun, 0, syncModel.StatusInfo, "Starting sync: "+since)

	ids, err := s.pms.ListChangedBookingIDs(ctx, since)
	if err != nil {
		log.Error().Err(err).Str("run_id", summary.RunID).Msg("Failed to fetch booking IDs")
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeRun, 0, syncModel.StatusFailed, "Failed to fetch booking IDs")

		return summary, fmt.Errorf("failed to fetch changed booking IDs: %w", err)
	}

	summary.Discovered = len(ids)

	log.Info().Int("count", len(ids)).Str("run_id", summary.RunID).Msg("Fetched updated bookings")
	s.syncLogRepo.Append(ctx, syncModel.ResourceTypeRun, 0, syncModel.StatusInfo, fmt.Sprintf("Fetched %d bookings", len(ids)))

	s.report.Reset()

	chunkSize := s.cfg.PMS.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	for start := 0; start < len(ids); start += chunkSize {
		chunk := ids[start:min(start+chunkSize, len(ids))]
		batch := newChunkBatch()
		chunkSkipped := 0

		for _, bookingID := range chunk {
			switch s.processBooking(ctx, batch, bookingID) {
			case outcomeSkipped:
				chunkSkipped++
				summary.Skipped++
			case outcomeFailed:
				summary.Failed++
			case outcomeStaged:
			}
		}

		s.commitChunk(ctx, batch, &summary)

		if flushErr := s.report.Flush(ctx); flushErr != nil {
			log.Error().Err(flushErr).Str("run_id", summary.RunID).Msg("failed to write report snapshot")
			s.syncLogRepo.Append(ctx, syncModel.ResourceTypeRun, 0, syncModel.StatusFailed, fmt.Sprintf("Failed to write report: %v", flushErr))
		}

		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeRun, 0, syncModel.StatusInfo, fmt.Sprintf("Skipped %d bookings in this chunk", chunkSkipped))
		log.Info().Int("chunk_size", len(chunk)).Int("skipped", chunkSkipped).Msg("Processed chunk of bookings")
	}

	if summary.Synced > 0 {
		// Committed bookings make the dashboard response caches stale.
		shared.InvalidateCaches(ctx, s.responseCache, bookingModel.EntityName)
	}

	s.syncLogRepo.Append(ctx, syncModel.ResourceTypeRun, 0, syncModel.StatusSuccess, "Sync complete")
	log.Info().
		Str("run_id", summary.RunID).
		Int("discovered", summary.Discovered).
		Int("synced", summary.Synced).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Sync complete")

	return summary, nil
}

type bookingOutcome int

const (
	outcomeStaged bookingOutcome = iota
	outcomeSkipped
	outcomeFailed
)

// processBooking walks one booking through fetch, validation and staging. Every
// failure path is terminal for this booking only: the outcome is logged and the
// caller moves on to the next ID.
func (s *serviceImpl) processBooking(ctx context.Context, batch *chunkBatch, bookingID int64) (outcome bookingOutcome) {
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Error().Interface("panic", recovered).Int64("booking_id", bookingID).Msg("unexpected failure while processing booking")
			s.syncLogRepo.Append(ctx, syncModel.ResourceTypeBooking, bookingID, syncModel.StatusFailed, fmt.Sprintf("Unexpected failure: %v", recovered))

			outcome = outcomeFailed
		}
	}()

	booking, ok := cache.Remember(ctx, s.entityCache, cache.KindBooking, bookingID, func(c context.Context) (pms.Booking, bool) {
		return s.pms.GetBooking(c, bookingID)
	})
	if !ok || booking.ID == 0 || len(booking.GuestIDs) == 0 {
		log.Warn().Int64("booking_id", bookingID).Msg("skipping booking with invalid or missing guest_ids")
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeBooking, bookingID, syncModel.StatusFailed, "Invalid booking data")

		return outcomeFailed
	}

	room, roomOK := cache.Remember(ctx, s.entityCache, cache.KindRoom, booking.RoomID, func(c context.Context) (pms.Room, bool) {
		return s.pms.GetRoom(c, booking.RoomID)
	})

	roomTypeID := booking.RoomTypeID
	if roomOK && room.RoomTypeID != nil {
		roomTypeID = room.RoomTypeID
	}

	if !roomOK || room.ID == 0 || roomTypeID == nil {
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeBooking, bookingID, syncModel.StatusFailed, "Missing room_type_id or room id")

		return outcomeFailed
	}

	// Room type is display data only; its absence does not reject the booking.
	roomType, roomTypeOK := cache.Remember(ctx, s.entityCache, cache.KindRoomType, *roomTypeID, func(c context.Context) (pms.RoomType, bool) {
		return s.pms.GetRoomType(c, *roomTypeID)
	})

	now := timezone.Now()

	resolvedGuests := make([]guestModel.Guest, 0, len(booking.GuestIDs))
	resolvedIDs := make([]int64, 0, len(booking.GuestIDs))

	for _, guestID := range booking.GuestIDs {
		guest, guestOK := cache.Remember(ctx, s.entityCache, cache.KindGuest, guestID, func(c context.Context) (pms.Guest, bool) {
			return s.pms.GetGuest(c, guestID)
		})
		if !guestOK || guest.ID == 0 {
			continue
		}

		resolvedGuests = append(resolvedGuests, toGuestModel(guest, now))
		resolvedIDs = append(resolvedIDs, guest.ID)
	}

	if !guestSetsMatch(booking.GuestIDs, resolvedIDs) {
		log.Warn().
			Int64("booking_id", bookingID).
			Ints64("expected", booking.GuestIDs).
			Ints64("resolved", resolvedIDs).
			Msg("guest set mismatch, rejecting booking")
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeBooking, bookingID, syncModel.StatusFailed, "Mismatched guest_ids")

		return outcomeFailed
	}

	incoming := toBookingModel(booking, resolvedIDs, now)

	existing, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeBooking, bookingID, syncModel.StatusFailed, fmt.Sprintf("Failed to load local booking: %v", err))

		return outcomeFailed
	}

	if existing.ID != 0 && bookingUnchanged(existing, incoming) {
		log.Info().Int64("booking_id", bookingID).Msg("booking already up-to-date, skipping")
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeBooking, bookingID, syncModel.StatusSkipped, "Already up-to-date")

		return outcomeSkipped
	}

	batch.stageRoom(toRoomModel(room, *roomTypeID, now))

	if roomTypeOK && roomType.ID != 0 {
		batch.stageRoomType(toRoomTypeModel(roomType, now))
	}

	for _, guest := range resolvedGuests {
		batch.stageGuest(guest)
	}

	batch.stageBooking(incoming)
	s.report.Append(buildReportRow(incoming, room, roomType, roomTypeOK, resolvedGuests))

	return outcomeStaged
}

func (s *serviceImpl) Logs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSyncLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sync.Logs")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.syncLogRepo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count sync logs: %w", err)
	}

	models, err := s.syncLogRepo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get sync logs: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func toBookingModel(booking pms.Booking, guestIDs []int64, now time.Time) bookingModel.Booking {
	return bookingModel.Booking{
		ID:         booking.ID,
		ExternalID: booking.ExternalID,
		RoomID:     booking.RoomID,
		GuestIDs:   pq.Int64Array(guestIDs),
		CheckIn:    parseUpstreamDate(booking.Arrival),
		CheckOut:   parseUpstreamDate(booking.Departure),
		Status:     booking.Status,
		Notes:      booking.Notes,
		SyncedAt:   now,
	}
}

func toRoomModel(room pms.Room, roomTypeID int64, now time.Time) roomModel.Room {
	return roomModel.Room{
		ID:         room.ID,
		Number:     room.Number,
		Floor:      room.Floor,
		RoomTypeID: roomTypeID,
		SyncedAt:   now,
	}
}

func toRoomTypeModel(roomType pms.RoomType, now time.Time) roomTypeModel.RoomType {
	return roomTypeModel.RoomType{
		ID:          roomType.ID,
		Name:        roomType.Name,
		Description: roomType.Description,
		SyncedAt:    now,
	}
}

func toGuestModel(guest pms.Guest, now time.Time) guestModel.Guest {
	return guestModel.Guest{
		ID:        guest.ID,
		FirstName: guest.FirstName,
		LastName:  guest.LastName,
		Email:     guest.Email,
		Phone:     guest.Phone,
		SyncedAt:  now,
	}
}

func buildReportRow(booking bookingModel.Booking, room pms.Room, roomType pms.RoomType, roomTypeOK bool, guests []guestModel.Guest) ReportRow {
	row := ReportRow{
		BookingID:  booking.ID,
		ExternalID: derefString(booking.ExternalID),
		Status:     derefString(booking.Status),
		RoomNumber: derefString(room.Number),
	}

	if booking.CheckIn != nil {
		row.CheckIn = booking.CheckIn.Format(constant.BookingDateFormat)
	}

	if booking.CheckOut != nil {
		row.CheckOut = booking.CheckOut.Format(constant.BookingDateFormat)
	}

	if room.Floor != nil {
		row.RoomFloor = fmt.Sprintf("%d", *room.Floor)
	}

	if roomTypeOK {
		row.RoomTypeName = derefString(roomType.Name)
		row.RoomTypeDesc = derefString(roomType.Description)
	}

	names := make([]string, 0, len(guests))
	for _, guest := range guests {
		names = append(names, guest.DisplayName())
	}

	row.Guests = strings.Join(names, "; ")

	return row
}

// parseUpstreamDate accepts the PMS date formats, date-only first.
func parseUpstreamDate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}

	if parsed, err := time.Parse(constant.BookingDateFormat, *value); err == nil {
		return &parsed
	}

	if parsed, err := time.Parse(time.RFC3339, *value); err == nil {
		return &parsed
	}

	return nil
}
