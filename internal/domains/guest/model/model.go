package model

import (
	"strings"
	"time"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
)

type Guest struct {
	ID        int64     `db:"id"`
	FirstName *string   `db:"first_name"`
	LastName  *string   `db:"last_name"`
	Email     *string   `db:"email"`
	Phone     *string   `db:"phone"`
	SyncedAt  time.Time `db:"synced_at"`
}

// DisplayName renders "First Last" with whichever parts are present.
func (g Guest) DisplayName() string {
	parts := []string{}

	if g.FirstName != nil && *g.FirstName != "" {
		parts = append(parts, *g.FirstName)
	}

	if g.LastName != nil && *g.LastName != "" {
		parts = append(parts, *g.LastName)
	}

	return strings.Join(parts, " ")
}

func UpdateColumns() []string {
	return []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhone, "synced_at"}
}
