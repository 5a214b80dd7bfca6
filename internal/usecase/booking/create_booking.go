package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/smartq-app/booking-api/internal/audit"
	"github.com/smartq-app/booking-api/internal/cache"
	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	VendorID uint
	Service  string
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	Customer string // authenticated identity email
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the customer-facing booking transaction: availability
// is re-resolved at commit time, the ledger append re-checks uniqueness
// inside its own atomic write, and the returned confirmation artifact is
// what the payment flow consumes.
type CreateBooking struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	cache      *cache.Availability
	windowDays int
	now        func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c *cache.Availability,
	windowDays int,
) *CreateBooking {
	return &CreateBooking{
		repo:       repo,
		audit:      auditor,
		cache:      c,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// WithClock overrides the clock. Tests only.
func (uc *CreateBooking) WithClock(now func() time.Time) *CreateBooking {
	uc.now = now
	return uc
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Confirmation, error) {

	vendor, err := uc.repo.GetVendorByID(ctx, in.VendorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("vendor_not_found")
		}
		return nil, err
	}

	if err := domain.ValidateBookingDate(in.Date, uc.now(), uc.windowDays); err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.VendorID, in.Service)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	// Fresh availability, never a UI snapshot. The ledger re-checks the
	// same slot inside its serialized write, so losing a race after this
	// point still surfaces as slot_unavailable.
	day, err := uc.resolve(ctx, vendor, in.Date)
	if err != nil {
		return nil, err
	}
	if day.Closed {
		return nil, httperr.ErrBusiness("closed_day")
	}
	if !contains(day.Slots, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	b := &models.Booking{
		VendorID:      in.VendorID,
		Date:          in.Date,
		Time:          in.Time,
		Service:       in.Service,
		Customer:      in.Customer,
		Status:        string(domain.StatusConfirmed),
		PaymentStatus: domain.BookingPaymentPending,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			uc.audit.Dispatch(audit.Event{
				VendorID: in.VendorID,
				Actor:    in.Customer,
				Action:   "booking_conflict",
				Entity:   "booking",
				Metadata: map[string]any{"date": in.Date, "time": in.Time},
			})
		}
		return nil, err
	}

	conf := &models.Confirmation{
		ID:         uuid.NewString(),
		VendorID:   vendor.ID,
		VendorName: vendor.Name,
		BookingID:  b.ID,
		Service:    in.Service,
		Price:      svc.Price,
		Date:       in.Date,
		Time:       in.Time,
		Customer:   in.Customer,
		Status:     string(domain.PaymentPending),
	}

	if err := uc.repo.CreateConfirmation(ctx, conf); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.VendorID, in.Date)

	uc.audit.Dispatch(audit.Event{
		VendorID: in.VendorID,
		Actor:    in.Customer,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return conf, nil
}

func (uc *CreateBooking) resolve(
	ctx context.Context,
	vendor *models.Vendor,
	date string,
) (domain.DayAvailability, error) {

	weekday, err := domain.Weekday(date)
	if err != nil {
		return domain.DayAvailability{}, err
	}

	hours, err := uc.repo.GetWorkingHours(ctx, vendor.ID, weekday)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.DayAvailability{}, err
	}

	bookings, err := uc.repo.ListBookingsForDate(ctx, vendor.ID, date)
	if err != nil {
		return domain.DayAvailability{}, err
	}

	return domain.ResolveAvailability(hours, vendor.SlotDurationMinutes, bookings, date)
}

func contains(slots []string, t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
