package booking

import (
	"context"
	"errors"
	"time"

	"github.com/smartq-app/booking-api/internal/models"
)

// ErrNotFound is returned by every implementation for missing records so
// use cases stay storage agnostic.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Vendor directory (read side) --------
	GetVendorByID(
		ctx context.Context,
		id uint,
	) (*models.Vendor, error)

	GetVendorBySlug(
		ctx context.Context,
		slug string,
	) (*models.Vendor, error)

	ListVendorsByService(
		ctx context.Context,
		service string,
		query string,
	) ([]models.Vendor, error)

	GetService(
		ctx context.Context,
		vendorID uint,
		name string,
	) (*models.VendorService, error)

	GetWorkingHours(
		ctx context.Context,
		vendorID uint,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Ledger (append / remove) --------

	// CreateBooking must check (vendor, date, time) uniqueness over active
	// bookings and insert as one serialized step. The loser of a race gets
	// a slot_unavailable business error.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// DeleteBooking removes the record matching the slot key. Idempotent:
	// deleting a slot with no record is not an error.
	DeleteBooking(
		ctx context.Context,
		key SlotKey,
	) error

	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForDate(
		ctx context.Context,
		vendorID uint,
		date string,
	) ([]models.Booking, error)

	ListBookingsForRange(
		ctx context.Context,
		vendorID uint,
		from string,
		to string,
	) ([]models.Booking, error)

	// -------- Confirmations --------
	CreateConfirmation(
		ctx context.Context,
		conf *models.Confirmation,
	) error

	GetConfirmation(
		ctx context.Context,
		id string,
	) (*models.Confirmation, error)

	// TransitionConfirmation writes conf's status and payment fields only
	// while the stored status still equals from, as one atomic
	// compare-and-set. Returns whether the transition won. Racing writers
	// (payment confirmation vs the reaper) both go through here, so a
	// terminal status can never be overwritten.
	TransitionConfirmation(
		ctx context.Context,
		conf *models.Confirmation,
		from string,
	) (bool, error)

	// -------- Pending-payment reaper --------
	ListExpiredPending(
		ctx context.Context,
		olderThan time.Time,
	) ([]models.Booking, error)

	GetConfirmationForBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Confirmation, error)
}
