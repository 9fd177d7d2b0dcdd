package service

import (
	"slices"
	"time"

	bookingModel "innsync/internal/domains/booking/model"
)

// guestSetsMatch reports whether the guest IDs declared by a booking and the guest
// IDs actually resolved upstream are equal as sets. Any missing guest fails the
// whole booking; a partially synced guest list must never be persisted.
func guestSetsMatch(declared, resolved []int64) bool {
	expected := make([]int64, len(declared))
	copy(expected, declared)
	slices.Sort(expected)

	got := make([]int64, len(resolved))
	copy(got, resolved)
	slices.Sort(got)

	return slices.Equal(expected, got)
}

// bookingUnchanged reports whether every tracked field of the incoming booking
// matches the stored one: room, check-in, check-out, status, notes and the full
// guest set, order-independent. Unchanged bookings are skipped without a write so
// repeated runs over an unchanged window are a no-op at the persistence layer.
func bookingUnchanged(existing, incoming bookingModel.Booking) bool {
	if existing.RoomID != incoming.RoomID {
		return false
	}

	if !datesEqual(existing.CheckIn, incoming.CheckIn) || !datesEqual(existing.CheckOut, incoming.CheckOut) {
		return false
	}

	if derefString(existing.Status) != derefString(incoming.Status) {
		return false
	}

	if derefString(existing.Notes) != derefString(incoming.Notes) {
		return false
	}

	return slices.Equal(existing.GuestIDSet(), incoming.GuestIDSet())
}

func datesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equal(*b)
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
