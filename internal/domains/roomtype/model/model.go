package model

import (
	"time"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
)

type RoomType struct {
	ID          int64     `db:"id"`
	Name        *string   `db:"name"`
	Description *string   `db:"description"`
	SyncedAt    time.Time `db:"synced_at"`
}

func UpdateColumns() []string {
	return []string{FieldName, FieldDescription, "synced_at"}
}
