package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBookingsByMonth(t *testing.T) {
	repo := testRepo()
	create := newCreate(repo)
	ctx := context.Background()

	for _, d := range []string{"2026-09-02", "2026-09-09", "2026-10-07"} {
		_, err := create.Execute(ctx, CreateBookingInput{
			VendorID: 1, Service: "clinic",
			Date: d, Time: "09:00",
			Customer: "a@example.com",
		})
		require.NoError(t, err)
	}

	uc := NewListBookings(repo)

	september, err := uc.ByMonth(ctx, 1, 2026, 9)
	require.NoError(t, err)
	require.Len(t, september, 2)
	assert.Equal(t, "2026-09-02", september[0].Date)
	assert.Equal(t, "2026-09-09", september[1].Date)

	october, err := uc.ByMonth(ctx, 1, 2026, 10)
	require.NoError(t, err)
	assert.Len(t, october, 1)
}

func TestListBookingsRejectsMalformedDate(t *testing.T) {
	_, err := NewListBookings(testRepo()).Execute(context.Background(), 1, "next tuesday")
	assert.Error(t, err)
}

func TestListVendorsDirectory(t *testing.T) {
	repo := testRepo()
	ctx := context.Background()

	uc := NewListVendors(repo)

	vendors, err := uc.Execute(ctx, "clinic", "")
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "city-clinic", vendors[0].Slug)

	vendors, err = uc.Execute(ctx, "clinic", "hyderabad")
	require.NoError(t, err)
	assert.Len(t, vendors, 1)

	vendors, err = uc.Execute(ctx, "salon", "")
	require.NoError(t, err)
	assert.Empty(t, vendors)
}
