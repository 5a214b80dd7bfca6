package booking

import (
	"context"
	"errors"
	"time"

	"github.com/smartq-app/booking-api/internal/audit"
	"github.com/smartq-app/booking-api/internal/cache"
	domain "github.com/smartq-app/booking-api/internal/domain/booking"
)

// ReleaseExpired frees slots whose booking never completed payment within
// the pending TTL. The confirmation moves to its terminal abandoned state
// and the ledger row is deleted, so the slot shows up as available again.
type ReleaseExpired struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
	ttl   time.Duration
}

func NewReleaseExpired(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c *cache.Availability,
	ttl time.Duration,
) *ReleaseExpired {
	return &ReleaseExpired{repo: repo, audit: auditor, cache: c, ttl: ttl}
}

// Execute returns how many reservations were released.
func (uc *ReleaseExpired) Execute(
	ctx context.Context,
	now time.Time,
) (int, error) {

	expired, err := uc.repo.ListExpiredPending(ctx, now.Add(-uc.ttl))
	if err != nil {
		return 0, err
	}

	released := 0
	for _, b := range expired {
		conf, err := uc.repo.GetConfirmationForBooking(ctx, b.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return released, err
		}

		if conf != nil {
			if err := domain.CanAbandon(domain.PaymentState(conf.Status)); err != nil {
				continue
			}
			conf.Status = string(domain.PaymentAbandoned)
			conf.PaymentID = ""
			conf.Amount = 0
			conf.PaymentMethod = ""

			// Compare-and-set against pending: if a payment confirmed the
			// reservation between our read and this write, the booking is
			// paid and must not be released.
			won, err := uc.repo.TransitionConfirmation(ctx, conf, string(domain.PaymentPending))
			if err != nil {
				return released, err
			}
			if !won {
				continue
			}
		}

		if err := uc.repo.DeleteBooking(ctx, domain.SlotKey{
			VendorID: b.VendorID,
			Date:     b.Date,
			Time:     b.Time,
		}); err != nil {
			return released, err
		}
		uc.cache.Invalidate(ctx, b.VendorID, b.Date)

		id := b.ID
		uc.audit.Dispatch(audit.Event{
			VendorID: b.VendorID,
			Actor:    "reaper",
			Action:   "pending_released",
			Entity:   "booking",
			EntityID: &id,
			Metadata: map[string]any{"date": b.Date, "time": b.Time},
		})
		released++
	}

	return released, nil
}
