package dto

import (
	"innsync/internal/domains/booking/model"
	"innsync/shared"
	"innsync/shared/constant"
	"innsync/shared/timezone"
)

type BookingResponse struct {
	ID         int64   `json:"id"`
	ExternalID *string `json:"external_id"`
	RoomID     int64   `json:"room_id"`
	GuestIDs   []int64 `json:"guest_ids"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
	SyncedAt   string  `json:"synced_at"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.ExternalID = booking.ExternalID
	r.RoomID = booking.RoomID
	r.GuestIDs = booking.GuestIDs
	r.Status = booking.Status
	r.Notes = booking.Notes
	r.SyncedAt = timezone.Format(booking.SyncedAt, constant.DateFormat)

	if booking.CheckIn != nil {
		checkIn := booking.CheckIn.Format(constant.BookingDateFormat)
		r.CheckIn = &checkIn
	}

	if booking.CheckOut != nil {
		checkOut := booking.CheckOut.Format(constant.BookingDateFormat)
		r.CheckOut = &checkOut
	}
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, total, limit int) {
	r.Bookings = make([]BookingResponse, 0, len(models))

	for _, booking := range models {
		response := BookingResponse{}
		response.FromModel(booking)

		r.Bookings = append(r.Bookings, response)
	}

	r.Total = total
	r.TotalPages = shared.CalculateTotalPage(total, limit)
}
