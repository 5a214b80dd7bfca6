package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartq-app/booking-api/internal/httperr"
)

func TestGenerateGrid(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		duration int
		want     []string
	}{
		{
			name: "one hour in halves",
			open: "09:00", close: "10:00", duration: 30,
			want: []string{"09:00", "09:30"},
		},
		{
			name: "morning window",
			open: "09:00", close: "11:00", duration: 30,
			want: []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name: "minute carry into the hour",
			open: "09:45", close: "11:00", duration: 30,
			want: []string{"09:45", "10:15", "10:45"},
		},
		{
			name: "duration longer than window still yields opening slot",
			open: "09:00", close: "09:30", duration: 45,
			want: []string{"09:00"},
		},
		{
			name: "uneven duration",
			open: "10:00", close: "11:00", duration: 25,
			want: []string{"10:00", "10:25", "10:50"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateGrid(tt.open, tt.close, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateGridErrors(t *testing.T) {
	_, err := GenerateGrid("10:00", "09:00", 30)
	assert.True(t, httperr.IsBusiness(err, "invalid_range"))

	_, err = GenerateGrid("09:00", "09:00", 30)
	assert.True(t, httperr.IsBusiness(err, "invalid_range"), "close == open is empty range")

	_, err = GenerateGrid("09:00", "10:00", 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	_, err = GenerateGrid("09:00", "10:00", -15)
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	_, err = GenerateGrid("9am", "10:00", 30)
	assert.True(t, httperr.IsBusiness(err, "invalid_range"))

	_, err = GenerateGrid("09:00", "25:00", 30)
	assert.True(t, httperr.IsBusiness(err, "invalid_range"))
}

// Every slot is strictly increasing, evenly spaced, and before close.
func TestGenerateGridProperties(t *testing.T) {
	cases := []struct {
		open, close string
		duration    int
	}{
		{"08:00", "18:00", 30},
		{"09:15", "17:45", 20},
		{"00:00", "23:59", 60},
		{"06:30", "07:00", 10},
	}

	for _, tc := range cases {
		slots, err := GenerateGrid(tc.open, tc.close, tc.duration)
		require.NoError(t, err)
		require.NotEmpty(t, slots)

		closeMin, err := parseHM(tc.close)
		require.NoError(t, err)

		prev := -1
		for i, s := range slots {
			cur, err := parseHM(s)
			require.NoError(t, err, "slot %q must be normalized HH:MM", s)

			assert.Less(t, cur, closeMin, "slot %q must start before close", s)
			if i > 0 {
				assert.Equal(t, tc.duration, cur-prev, "uneven spacing at %q", s)
			}
			assert.Greater(t, cur, prev, "slots must be strictly increasing")
			prev = cur
		}
	}
}

func TestGenerateGridDeterministic(t *testing.T) {
	a, err := GenerateGrid("09:00", "12:00", 15)
	require.NoError(t, err)
	b, err := GenerateGrid("09:00", "12:00", 15)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
