package model

import (
	"time"
)

const (
	TableName  = "sync_logs"
	EntityName = "sync_log"

	FieldID           = "id"
	FieldResourceType = "resource_type"
	FieldResourceID   = "resource_id"
	FieldStatus       = "status"
	FieldMessage      = "message"
	FieldCreatedAt    = "created_at"
)

const (
	StatusInfo    = "info"
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

const (
	ResourceTypeBooking  = "booking"
	ResourceTypeGuest    = "guest"
	ResourceTypeRoom     = "room"
	ResourceTypeRoomType = "room_type"

	// ResourceTypeRun marks run-level milestones rather than a single record.
	ResourceTypeRun = "sync_run"
)

// SyncLog is one append-only audit entry. Entries are never updated or deleted.
type SyncLog struct {
	ID           int64     `db:"id"`
	ResourceType string    `db:"resource_type"`
	ResourceID   int64     `db:"resource_id"`
	Status       string    `db:"status"`
	Message      string    `db:"message"`
	CreatedAt    time.Time `db:"created_at"`
}
