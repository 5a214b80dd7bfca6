package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	vendorID uint,
	date string,
) ([]models.Booking, error) {

	if _, err := domain.Weekday(date); err != nil {
		return nil, err
	}
	return uc.repo.ListBookingsForDate(ctx, vendorID, date)
}

// ByMonth lists one calendar month, for the dashboard month view.
func (uc *ListBookings) ByMonth(
	ctx context.Context,
	vendorID uint,
	year int,
	month int,
) ([]models.Booking, error) {

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	return uc.repo.ListBookingsForRange(
		ctx,
		vendorID,
		fmt.Sprintf("%04d-%02d-01", year, month),
		to.Format(domain.DateLayout),
	)
}
