package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/httperr"
)

func TestBlockSlotHidesSlotFromCustomers(t *testing.T) {
	repo := testRepo()
	ctx := context.Background()

	b, err := NewBlockSlot(repo, nil, nil).Execute(ctx, BlockSlotInput{
		VendorID: 1, Date: "2026-09-02", Time: "09:30", Actor: "vendor@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusBlocked), b.Status)
	assert.Equal(t, domain.BlockedService, b.Service)
	assert.Equal(t, domain.BlockedCustomer, b.Customer)

	day, err := NewGetAvailability(repo, nil).Execute(ctx, domain.AvailabilityInput{
		VendorID: 1, Date: "2026-09-02",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, day.Slots)

	// A customer cannot take the blocked slot.
	_, err = newCreate(repo).Execute(ctx, CreateBookingInput{
		VendorID: 1, Service: "clinic",
		Date: "2026-09-02", Time: "09:30",
		Customer: "a@example.com",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestBlockSlotConflictsWithExistingBooking(t *testing.T) {
	repo := testRepo()
	ctx := context.Background()

	_, err := newCreate(repo).Execute(ctx, CreateBookingInput{
		VendorID: 1, Service: "clinic",
		Date: "2026-09-02", Time: "10:00",
		Customer: "a@example.com",
	})
	require.NoError(t, err)

	_, err = NewBlockSlot(repo, nil, nil).Execute(ctx, BlockSlotInput{
		VendorID: 1, Date: "2026-09-02", Time: "10:00", Actor: "vendor@example.com",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestUnblockSlotIsIdempotent(t *testing.T) {
	repo := testRepo()
	ctx := context.Background()

	block := NewBlockSlot(repo, nil, nil)
	unblock := NewUnblockSlot(repo, nil, nil)

	_, err := block.Execute(ctx, BlockSlotInput{
		VendorID: 1, Date: "2026-09-02", Time: "09:00", Actor: "vendor@example.com",
	})
	require.NoError(t, err)

	in := UnblockSlotInput{VendorID: 1, Date: "2026-09-02", Time: "09:00", Actor: "vendor@example.com"}
	require.NoError(t, unblock.Execute(ctx, in))
	require.NoError(t, unblock.Execute(ctx, in)) // free slot, still fine

	day, err := NewGetAvailability(repo, nil).Execute(ctx, domain.AvailabilityInput{
		VendorID: 1, Date: "2026-09-02",
	})
	require.NoError(t, err)
	assert.Contains(t, day.Slots, "09:00")
}
