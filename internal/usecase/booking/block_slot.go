package booking

import (
	"context"
	"errors"

	"github.com/smartq-app/booking-api/internal/audit"
	"github.com/smartq-app/booking-api/internal/cache"
	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/models"
)

type BlockSlotInput struct {
	VendorID uint
	Date     string
	Time     string
	Actor    string
}

// BlockSlot reserves a slot on the vendor's own behalf. Same uniqueness
// discipline as a customer booking, no payment artifact.
type BlockSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewBlockSlot(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c *cache.Availability,
) *BlockSlot {
	return &BlockSlot{repo: repo, audit: auditor, cache: c}
}

func (uc *BlockSlot) Execute(
	ctx context.Context,
	in BlockSlotInput,
) (*models.Booking, error) {

	if _, err := uc.repo.GetVendorByID(ctx, in.VendorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("vendor_not_found")
		}
		return nil, err
	}

	if _, err := domain.Weekday(in.Date); err != nil {
		return nil, err
	}

	b := &models.Booking{
		VendorID: in.VendorID,
		Date:     in.Date,
		Time:     in.Time,
		Service:  domain.BlockedService,
		Customer: domain.BlockedCustomer,
		Status:   string(domain.StatusBlocked),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.VendorID, in.Date)

	uc.audit.Dispatch(audit.Event{
		VendorID: in.VendorID,
		Actor:    in.Actor,
		Action:   "slot_blocked",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"date": in.Date, "time": in.Time},
	})

	return b, nil
}
