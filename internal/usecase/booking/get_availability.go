package booking

import (
	"context"
	"errors"

	"github.com/smartq-app/booking-api/internal/cache"
	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailability(repo domain.Repository, c *cache.Availability) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (domain.DayAvailability, error) {

	if day, ok := uc.cache.Get(ctx, in.VendorID, in.Date); ok {
		return *day, nil
	}

	vendor, err := uc.repo.GetVendorByID(ctx, in.VendorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DayAvailability{}, httperr.ErrBusiness("vendor_not_found")
		}
		return domain.DayAvailability{}, err
	}

	weekday, err := domain.Weekday(in.Date)
	if err != nil {
		return domain.DayAvailability{}, err
	}

	// A missing row for the weekday means the day is closed.
	hours, err := uc.repo.GetWorkingHours(ctx, in.VendorID, weekday)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.DayAvailability{}, err
	}

	bookings, err := uc.repo.ListBookingsForDate(ctx, in.VendorID, in.Date)
	if err != nil {
		return domain.DayAvailability{}, err
	}

	day, err := domain.ResolveAvailability(
		hours,
		vendor.SlotDurationMinutes,
		bookings,
		in.Date,
	)
	if err != nil {
		return domain.DayAvailability{}, err
	}

	uc.cache.Set(ctx, in.VendorID, in.Date, day)
	return day, nil
}
