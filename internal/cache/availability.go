package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/smartq-app/booking-api/internal/domain/booking"
)

// Availability caches resolved day availability per (vendor, date). Every
// ledger mutation invalidates the touched key, so the cache is only ever a
// short-lived read hint; the booking commit path never trusts it.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client, ttl time.Duration) *Availability {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Availability{rdb: rdb, ttl: ttl}
}

func key(vendorID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", vendorID, date)
}

// Get returns the cached availability and whether it was present. A nil
// receiver (no redis configured) always misses.
func (c *Availability) Get(
	ctx context.Context,
	vendorID uint,
	date string,
) (*domain.DayAvailability, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(vendorID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var day domain.DayAvailability
	if err := json.Unmarshal(raw, &day); err != nil {
		return nil, false
	}
	return &day, true
}

func (c *Availability) Set(
	ctx context.Context,
	vendorID uint,
	date string,
	day domain.DayAvailability,
) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(day)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(vendorID, date), raw, c.ttl)
}

func (c *Availability) Invalidate(
	ctx context.Context,
	vendorID uint,
	date string,
) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key(vendorID, date))
}
