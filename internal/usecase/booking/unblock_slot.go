package booking

import (
	"context"

	"github.com/smartq-app/booking-api/internal/audit"
	"github.com/smartq-app/booking-api/internal/cache"
	domain "github.com/smartq-app/booking-api/internal/domain/booking"
)

type UnblockSlotInput struct {
	VendorID uint
	Date     string
	Time     string
	Actor    string
}

// UnblockSlot removes whatever booking occupies the slot. Idempotent:
// unblocking a free slot is a no-op, not an error.
type UnblockSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewUnblockSlot(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c *cache.Availability,
) *UnblockSlot {
	return &UnblockSlot{repo: repo, audit: auditor, cache: c}
}

func (uc *UnblockSlot) Execute(
	ctx context.Context,
	in UnblockSlotInput,
) error {

	if _, err := domain.Weekday(in.Date); err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, domain.SlotKey{
		VendorID: in.VendorID,
		Date:     in.Date,
		Time:     in.Time,
	}); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, in.VendorID, in.Date)

	uc.audit.Dispatch(audit.Event{
		VendorID: in.VendorID,
		Actor:    in.Actor,
		Action:   "slot_unblocked",
		Entity:   "booking",
		Metadata: map[string]any{"date": in.Date, "time": in.Time},
	})

	return nil
}
