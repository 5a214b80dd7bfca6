package booking

import (
	"fmt"
	"time"

	"github.com/smartq-app/booking-api/internal/httperr"
)

const DefaultSlotDuration = 30

// GenerateGrid expands a working window into ordered slot start times.
// The interval is half open: the last slot starts strictly before close.
func GenerateGrid(open, close string, durationMin int) ([]string, error) {
	if durationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	openMin, err := parseHM(open)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	closeMin, err := parseHM(close)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	if closeMin <= openMin {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	var slots []string
	for cur := openMin; cur < closeMin; cur += durationMin {
		slots = append(slots, fmt.Sprintf("%02d:%02d", cur/60, cur%60))
	}

	return slots, nil
}

// parseHM converts "HH:MM" to minutes since midnight.
func parseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
