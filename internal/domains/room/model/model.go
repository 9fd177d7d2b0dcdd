package model

import (
	"time"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldNumber     = "number"
	FieldFloor      = "floor"
	FieldRoomTypeID = "room_type_id"
)

// Room is the latest known snapshot of an upstream room. The ID is assigned by the
// PMS and rows only ever change through a sync run.
type Room struct {
	ID         int64     `db:"id"`
	Number     *string   `db:"number"`
	Floor      *int      `db:"floor"`
	RoomTypeID int64     `db:"room_type_id"`
	SyncedAt   time.Time `db:"synced_at"`
}

// UpdateColumns lists the columns overwritten when an upsert hits an existing row.
func UpdateColumns() []string {
	return []string{FieldNumber, FieldFloor, FieldRoomTypeID, "synced_at"}
}
