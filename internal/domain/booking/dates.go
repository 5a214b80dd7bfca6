package booking

import (
	"time"

	"github.com/smartq-app/booking-api/internal/httperr"
)

const DateLayout = "2006-01-02"

// Weekday resolves the weekday (0 = Sunday) of a "YYYY-MM-DD" date.
func Weekday(date string) (int, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date")
	}
	return int(d.Weekday()), nil
}

// ValidateBookingDate rejects past dates and dates further out than
// windowDays. now is injected so callers control the clock.
func ValidateBookingDate(date string, now time.Time, windowDays int) error {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return httperr.ErrBusiness("date_out_of_range")
	}
	if windowDays > 0 && d.After(today.AddDate(0, 0, windowDays)) {
		return httperr.ErrBusiness("date_out_of_range")
	}

	return nil
}
