package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/infra/repository"
	"github.com/smartq-app/booking-api/internal/models"
)

// Fixed clock for the whole package: Tuesday, so 2026-09-02 is a Wednesday
// and 2026-09-06 a Sunday.
func testNow() time.Time {
	return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
}

func testRepo() *repository.BookingMemoryRepository {
	repo := repository.NewBookingMemoryRepository()
	repo.AddVendor(models.Vendor{
		ID:                  1,
		Name:                "City Clinic",
		Slug:                "city-clinic",
		Location:            "Hyderabad",
		SlotDurationMinutes: 30,
		Services: []models.VendorService{
			{VendorID: 1, Name: "clinic", Price: 500, Active: true},
		},
		WorkingHours: []models.WorkingHours{
			{VendorID: 1, Weekday: 3, OpenTime: "09:00", CloseTime: "11:00", Active: true},
			{VendorID: 1, Weekday: 0, Active: false},
		},
	})
	return repo
}

func newCreate(repo domain.Repository) *CreateBooking {
	return NewCreateBooking(repo, nil, nil, 90).WithClock(testNow)
}

func TestCreateBookingHappyPath(t *testing.T) {
	repo := testRepo()
	uc := newCreate(repo)
	ctx := context.Background()

	conf, err := uc.Execute(ctx, CreateBookingInput{
		VendorID: 1,
		Service:  "clinic",
		Date:     "2026-09-02",
		Time:     "09:30",
		Customer: "ravi@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, conf.ID)
	assert.Equal(t, "City Clinic", conf.VendorName)
	assert.Equal(t, 500.0, conf.Price)
	assert.Equal(t, string(domain.PaymentPending), conf.Status)
	assert.NotZero(t, conf.BookingID)

	b, err := repo.GetBookingByID(ctx, conf.BookingID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	assert.Equal(t, domain.BookingPaymentPending, b.PaymentStatus)
	assert.Equal(t, "ravi@example.com", b.Customer)

	// Grid was 09:00..10:30; the booked slot drops out.
	avail := NewGetAvailability(repo, nil)
	day, err := avail.Execute(ctx, domain.AvailabilityInput{VendorID: 1, Date: "2026-09-02"})
	require.NoError(t, err)
	assert.False(t, day.Closed)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, day.Slots)
}

func TestCreateBookingRejectsTakenSlot(t *testing.T) {
	repo := testRepo()
	uc := newCreate(repo)
	ctx := context.Background()

	in := CreateBookingInput{
		VendorID: 1, Service: "clinic",
		Date: "2026-09-02", Time: "10:00",
		Customer: "a@example.com",
	}
	_, err := uc.Execute(ctx, in)
	require.NoError(t, err)

	in.Customer = "b@example.com"
	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateBookingClosedDay(t *testing.T) {
	uc := newCreate(testRepo())

	// Sunday is inactive.
	_, err := uc.Execute(context.Background(), CreateBookingInput{
		VendorID: 1, Service: "clinic",
		Date: "2026-09-06", Time: "09:00",
		Customer: "a@example.com",
	})
	assert.True(t, httperr.IsBusiness(err, "closed_day"))

	// Thursday has no working-hours row at all: also closed.
	_, err = uc.Execute(context.Background(), CreateBookingInput{
		VendorID: 1, Service: "clinic",
		Date: "2026-09-03", Time: "09:00",
		Customer: "a@example.com",
	})
	assert.True(t, httperr.IsBusiness(err, "closed_day"))
}

func TestCreateBookingOffGridSlot(t *testing.T) {
	uc := newCreate(testRepo())

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		VendorID: 1, Service: "clinic",
		Date: "2026-09-02", Time: "09:15",
		Customer: "a@example.com",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateBookingDateWindow(t *testing.T) {
	uc := newCreate(testRepo())
	ctx := context.Background()

	in := CreateBookingInput{
		VendorID: 1, Service: "clinic",
		Time: "09:00", Customer: "a@example.com",
	}

	in.Date = "2026-08-31" // yesterday
	_, err := uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "date_out_of_range"))

	in.Date = "2027-01-01" // past the 90-day window
	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "date_out_of_range"))
}

func TestCreateBookingUnknownVendorAndService(t *testing.T) {
	uc := newCreate(testRepo())
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateBookingInput{
		VendorID: 42, Service: "clinic",
		Date: "2026-09-02", Time: "09:00",
		Customer: "a@example.com",
	})
	assert.True(t, httperr.IsBusiness(err, "vendor_not_found"))

	_, err = uc.Execute(ctx, CreateBookingInput{
		VendorID: 1, Service: "spa",
		Date: "2026-09-02", Time: "09:00",
		Customer: "a@example.com",
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	repo := testRepo()
	uc := newCreate(repo)
	ctx := context.Background()

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(ctx, CreateBookingInput{
				VendorID: 1, Service: "clinic",
				Date: "2026-09-02", Time: "10:30",
				Customer: "c@example.com",
			})
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
		}
	}
	assert.Equal(t, 1, won)
}
