package dto

import "github.com/smartq-app/booking-api/internal/models"

type BookingListDTO struct {
	ID       uint   `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Service  string `json:"service"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
	Paid     bool   `json:"paid"`
}

func FromBooking(b models.Booking) BookingListDTO {
	return BookingListDTO{
		ID:       b.ID,
		Date:     b.Date,
		Time:     b.Time,
		Service:  b.Service,
		Customer: b.Customer,
		Status:   b.Status,
		Paid:     b.PaymentID != "",
	}
}

func FromBookings(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
