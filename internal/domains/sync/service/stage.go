package service

import (
	"context"
	"fmt"

	bookingModel "innsync/internal/domains/booking/model"
	guestModel "innsync/internal/domains/guest/model"
	roomModel "innsync/internal/domains/room/model"
	roomTypeModel "innsync/internal/domains/roomtype/model"
	syncModel "innsync/internal/domains/sync/model"
	"innsync/internal/domains/sync/model/dto"
)

// chunkBatch accumulates validated records for one chunk of booking IDs. Shared
// rooms, room types and guests are keyed by ID so the last booking to touch an
// entity within the chunk wins.
type chunkBatch struct {
	rooms     map[int64]roomModel.Room
	roomTypes map[int64]roomTypeModel.RoomType
	guests    map[int64]guestModel.Guest
	bookings  []bookingModel.Booking
}

func newChunkBatch() *chunkBatch {
	return &chunkBatch{
		rooms:     map[int64]roomModel.Room{},
		roomTypes: map[int64]roomTypeModel.RoomType{},
		guests:    map[int64]guestModel.Guest{},
	}
}

func (b *chunkBatch) stageRoom(room roomModel.Room) {
	b.rooms[room.ID] = room
}

func (b *chunkBatch) stageRoomType(roomType roomTypeModel.RoomType) {
	b.roomTypes[roomType.ID] = roomType
}

func (b *chunkBatch) stageGuest(guest guestModel.Guest) {
	b.guests[guest.ID] = guest
}

func (b *chunkBatch) stageBooking(booking bookingModel.Booking) {
	b.bookings = append(b.bookings, booking)
}

func (b *chunkBatch) roomList() []roomModel.Room {
	rooms := make([]roomModel.Room, 0, len(b.rooms))
	for _, room := range b.rooms {
		rooms = append(rooms, room)
	}

	return rooms
}

func (b *chunkBatch) roomTypeList() []roomTypeModel.RoomType {
	roomTypes := make([]roomTypeModel.RoomType, 0, len(b.roomTypes))
	for _, roomType := range b.roomTypes {
		roomTypes = append(roomTypes, roomType)
	}

	return roomTypes
}

func (b *chunkBatch) guestList() []guestModel.Guest {
	guests := make([]guestModel.Guest, 0, len(b.guests))
	for _, guest := range b.guests {
		guests = append(guests, guest)
	}

	return guests
}

// commitChunk upserts the four staged collections. Each entity kind commits
// independently: one kind failing is a chunk-local partial failure and must not
// keep the other kinds, or later chunks, from landing.
func (s *serviceImpl) commitChunk(ctx context.Context, batch *chunkBatch, summary *dto.RunSummary) {
	if err := s.roomRepo.UpsertBulk(ctx, batch.roomList()); err != nil {
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeRoom, 0, syncModel.StatusFailed, fmt.Sprintf("Failed to upsert rooms: %v", err))
	}

	if err := s.roomTypeRepo.UpsertBulk(ctx, batch.roomTypeList()); err != nil {
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeRoomType, 0, syncModel.StatusFailed, fmt.Sprintf("Failed to upsert room types: %v", err))
	}

	if err := s.guestRepo.UpsertBulk(ctx, batch.guestList()); err != nil {
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeGuest, 0, syncModel.StatusFailed, fmt.Sprintf("Failed to upsert guests: %v", err))
	}

	if err := s.bookingRepo.UpsertBulk(ctx, batch.bookings); err != nil {
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeBooking, 0, syncModel.StatusFailed, fmt.Sprintf("Failed to upsert bookings: %v", err))
		summary.Failed += len(batch.bookings)

		return
	}

	for _, booking := range batch.bookings {
		s.syncLogRepo.Append(ctx, syncModel.ResourceTypeBooking, booking.ID, syncModel.StatusSuccess, "Synced booking")
		summary.Synced++
	}
}
