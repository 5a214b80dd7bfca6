package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartq-app/booking-api/internal/httperr"
)

func TestWeekday(t *testing.T) {
	wd, err := Weekday("2026-09-06") // a Sunday
	require.NoError(t, err)
	assert.Equal(t, 0, wd)

	wd, err = Weekday("2026-09-02") // a Wednesday
	require.NoError(t, err)
	assert.Equal(t, 3, wd)

	_, err = Weekday("02-09-2026")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestValidateBookingDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	assert.NoError(t, ValidateBookingDate("2026-09-01", now, 90), "same day is allowed")
	assert.NoError(t, ValidateBookingDate("2026-09-30", now, 90))
	assert.NoError(t, ValidateBookingDate("2026-11-30", now, 90), "exactly at the window edge")

	err := ValidateBookingDate("2026-08-31", now, 90)
	assert.True(t, httperr.IsBusiness(err, "date_out_of_range"), "past dates rejected")

	err = ValidateBookingDate("2026-12-01", now, 90)
	assert.True(t, httperr.IsBusiness(err, "date_out_of_range"), "beyond the window")

	err = ValidateBookingDate("not-a-date", now, 90)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestPaymentTransitions(t *testing.T) {
	assert.NoError(t, CanConfirmPayment(PaymentPending))
	assert.Error(t, CanConfirmPayment(PaymentConfirmed))
	assert.Error(t, CanConfirmPayment(PaymentAbandoned))

	assert.NoError(t, CanAbandon(PaymentPending))
	assert.Error(t, CanAbandon(PaymentConfirmed))
}
