package model

import (
	"slices"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldExternalID = "external_id"
	FieldRoomID     = "room_id"
	FieldGuestIDs   = "guest_ids"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldStatus     = "status"
	FieldNotes      = "notes"
)

// Booking is the locally cached snapshot of an upstream booking. guest_ids holds
// the full validated guest set for the booking, never a partial one.
type Booking struct {
	ID         int64         `db:"id"`
	ExternalID *string       `db:"external_id"`
	RoomID     int64         `db:"room_id"`
	GuestIDs   pq.Int64Array `db:"guest_ids"`
	CheckIn    *time.Time    `db:"check_in"`
	CheckOut   *time.Time    `db:"check_out"`
	Status     *string       `db:"status"`
	Notes      *string       `db:"notes"`
	SyncedAt   time.Time     `db:"synced_at"`
}

// GuestIDSet returns the guest IDs sorted, for order-independent comparison.
func (b Booking) GuestIDSet() []int64 {
	ids := make([]int64, len(b.GuestIDs))
	copy(ids, b.GuestIDs)
	slices.Sort(ids)

	return ids
}

func UpdateColumns() []string {
	return []string{FieldExternalID, FieldRoomID, FieldGuestIDs, FieldCheckIn, FieldCheckOut, FieldStatus, FieldNotes, "synced_at"}
}
