package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartq-app/booking-api/internal/models"
)

func openDay(open, close string) *models.WorkingHours {
	return &models.WorkingHours{OpenTime: open, CloseTime: close, Active: true}
}

func TestResolveAvailabilityClosedDay(t *testing.T) {
	for _, hours := range []*models.WorkingHours{
		nil,
		{Active: false, OpenTime: "09:00", CloseTime: "18:00"},
		{Active: true}, // no window defined
	} {
		day, err := ResolveAvailability(hours, 30, nil, "2026-09-06")
		require.NoError(t, err)
		assert.True(t, day.Closed)
		assert.Empty(t, day.Slots)
	}
}

func TestResolveAvailabilitySubtractsActiveBookings(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2026-09-02", Time: "09:30", Status: string(StatusConfirmed)},
		{Date: "2026-09-02", Time: "10:30", Status: string(StatusBlocked)},
		{Date: "2026-09-03", Time: "10:00", Status: string(StatusConfirmed)}, // other date
	}

	day, err := ResolveAvailability(openDay("09:00", "11:00"), 30, bookings, "2026-09-02")
	require.NoError(t, err)

	assert.False(t, day.Closed)
	assert.Equal(t, []string{"09:00", "10:00"}, day.Slots)
}

func TestResolveAvailabilityPreservesOrder(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2026-09-02", Time: "09:00", Status: string(StatusConfirmed)},
	}

	day, err := ResolveAvailability(openDay("09:00", "12:00"), 30, bookings, "2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30", "10:00", "10:30", "11:00", "11:30"}, day.Slots)
}

func TestResolveAvailabilityFullyBookedIsNotClosed(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2026-09-02", Time: "09:00", Status: string(StatusConfirmed)},
		{Date: "2026-09-02", Time: "09:30", Status: string(StatusBlocked)},
	}

	day, err := ResolveAvailability(openDay("09:00", "10:00"), 30, bookings, "2026-09-02")
	require.NoError(t, err)

	assert.False(t, day.Closed, "fully booked is distinct from closed")
	assert.Empty(t, day.Slots)
}

func TestResolveAvailabilityDefaultsDuration(t *testing.T) {
	day, err := ResolveAvailability(openDay("09:00", "10:00"), 0, nil, "2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, day.Slots)
}

// A booking never appears in the available set for its date.
func TestResolveAvailabilityNeverShowsBookedSlot(t *testing.T) {
	hours := openDay("08:00", "18:00")
	bookings := []models.Booking{
		{Date: "2026-09-02", Time: "08:30", Status: string(StatusConfirmed)},
		{Date: "2026-09-02", Time: "12:00", Status: string(StatusBlocked)},
		{Date: "2026-09-02", Time: "17:30", Status: string(StatusConfirmed)},
	}

	day, err := ResolveAvailability(hours, 30, bookings, "2026-09-02")
	require.NoError(t, err)

	for _, b := range bookings {
		assert.NotContains(t, day.Slots, b.Time)
	}
}
