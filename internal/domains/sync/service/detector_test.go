package service

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	bookingModel "innsync/internal/domains/booking/model"
)

func TestGuestSetsMatch(t *testing.T) {
	tests := []struct {
		name     string
		declared []int64
		resolved []int64
		want     bool
	}{
		{
			name:     "identical sets",
			declared: []int64{401, 402},
			resolved: []int64{401, 402},
			want:     true,
		},
		{
			name:     "order does not matter",
			declared: []int64{402, 401},
			resolved: []int64{401, 402},
			want:     true,
		},
		{
			name:     "missing guest fails",
			declared: []int64{401, 402},
			resolved: []int64{401},
			want:     false,
		},
		{
			name:     "extra guest fails",
			declared: []int64{401},
			resolved: []int64{401, 402},
			want:     false,
		},
		{
			name:     "both empty",
			declared: []int64{},
			resolved: []int64{},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guestSetsMatch(tt.declared, tt.resolved))
		})
	}
}

func TestBookingUnchanged(t *testing.T) {
	checkIn := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	status := "confirmed"
	notes := "late arrival"

	base := func() bookingModel.Booking {
		return bookingModel.Booking{
			ID:       1001,
			RoomID:   201,
			GuestIDs: pq.Int64Array{401, 402},
			CheckIn:  &checkIn,
			CheckOut: &checkOut,
			Status:   &status,
			Notes:    &notes,
		}
	}

	t.Run("identical bookings are unchanged", func(t *testing.T) {
		assert.True(t, bookingUnchanged(base(), base()))
	})

	t.Run("guest order is irrelevant", func(t *testing.T) {
		incoming := base()
		incoming.GuestIDs = pq.Int64Array{402, 401}

		assert.True(t, bookingUnchanged(base(), incoming))
	})

	t.Run("room change detected", func(t *testing.T) {
		incoming := base()
		incoming.RoomID = 202

		assert.False(t, bookingUnchanged(base(), incoming))
	})

	t.Run("date change detected", func(t *testing.T) {
		incoming := base()
		moved := checkOut.AddDate(0, 0, 1)
		incoming.CheckOut = &moved

		assert.False(t, bookingUnchanged(base(), incoming))
	})

	t.Run("nil vs set date detected", func(t *testing.T) {
		incoming := base()
		incoming.CheckIn = nil

		assert.False(t, bookingUnchanged(base(), incoming))
	})

	t.Run("status change detected", func(t *testing.T) {
		incoming := base()
		cancelled := "cancelled"
		incoming.Status = &cancelled

		assert.False(t, bookingUnchanged(base(), incoming))
	})

	t.Run("notes change detected", func(t *testing.T) {
		incoming := base()
		incoming.Notes = nil

		assert.False(t, bookingUnchanged(base(), incoming))
	})

	t.Run("guest set change detected", func(t *testing.T) {
		incoming := base()
		incoming.GuestIDs = pq.Int64Array{401}

		assert.False(t, bookingUnchanged(base(), incoming))
	})

	t.Run("nil and empty notes compare equal", func(t *testing.T) {
		existing := base()
		existing.Notes = nil
		incoming := base()
		empty := ""
		incoming.Notes = &empty

		assert.True(t, bookingUnchanged(existing, incoming))
	})
}

func TestParseUpstreamDate(t *testing.T) {
	dateOnly := "2025-03-01"
	rfc := "2025-03-01T14:00:00Z"
	garbage := "not-a-date"
	empty := ""

	parsed := parseUpstreamDate(&dateOnly)
	assert.NotNil(t, parsed)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *parsed)

	parsed = parseUpstreamDate(&rfc)
	assert.NotNil(t, parsed)
	assert.Equal(t, 14, parsed.Hour())

	assert.Nil(t, parseUpstreamDate(&garbage))
	assert.Nil(t, parseUpstreamDate(&empty))
	assert.Nil(t, parseUpstreamDate(nil))
}
