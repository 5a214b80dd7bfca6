package booking

import (
	"github.com/smartq-app/booking-api/internal/models"
)

// DayAvailability distinguishes a closed day from an open day that is
// fully booked. Both render as zero slots, but callers that need the
// difference (the vendor dashboard, tests) get it from Closed.
type DayAvailability struct {
	Closed bool     `json:"closed"`
	Slots  []string `json:"slots"`
}

// ResolveAvailability subtracts the active bookings for a date from the
// grid generated out of the vendor's working hours. Order of the grid is
// preserved; the function never mutates its inputs.
func ResolveAvailability(
	hours *models.WorkingHours,
	durationMin int,
	bookings []models.Booking,
	date string,
) (DayAvailability, error) {

	if hours == nil || !hours.Active || hours.OpenTime == "" || hours.CloseTime == "" {
		return DayAvailability{Closed: true, Slots: []string{}}, nil
	}

	if durationMin <= 0 {
		durationMin = DefaultSlotDuration
	}

	grid, err := GenerateGrid(hours.OpenTime, hours.CloseTime, durationMin)
	if err != nil {
		return DayAvailability{}, err
	}

	taken := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.Date == date && IsActive(Status(b.Status)) {
			taken[b.Time] = struct{}{}
		}
	}

	slots := make([]string, 0, len(grid))
	for _, s := range grid {
		if _, booked := taken[s]; !booked {
			slots = append(slots, s)
		}
	}

	return DayAvailability{Slots: slots}, nil
}
