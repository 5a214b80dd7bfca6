package booking

import "github.com/smartq-app/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusBlocked   Status = "blocked"
)

// IsActive reports whether a booking still occupies its slot.
func IsActive(s Status) bool {
	return s == StatusConfirmed || s == StatusBlocked
}

// Reserved markers for vendor-initiated blocks.
const (
	BlockedService  = "blocked"
	BlockedCustomer = "vendor-blocked"
)

// ===============================
// Payment lifecycle (confirmation artifact)
// ===============================

type PaymentState string

const (
	PaymentPending   PaymentState = "pending_payment"
	PaymentConfirmed PaymentState = "confirmed"
	PaymentAbandoned PaymentState = "abandoned"
)

// Booking-side payment flags.
const (
	BookingPaymentPending = "pending"
	BookingPaymentPaid    = "paid"
)

// CanConfirmPayment guards pending_payment -> confirmed. Confirmed and
// abandoned are terminal.
func CanConfirmPayment(current PaymentState) error {
	if current != PaymentPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanAbandon guards pending_payment -> abandoned.
func CanAbandon(current PaymentState) error {
	if current != PaymentPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
