//go:build unit

package booking_test

import (
	"testing"
	"time"

	"campsite-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) booking.StayRange {
	t.Helper()
	stay, err := booking.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestStayRange(t *testing.T) {
	t.Run("construction", func(t *testing.T) {
		t.Run("valid range ok", func(t *testing.T) {
			stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 12))
			assert.Equal(t, date(2026, 7, 10), stay.CheckIn())
			assert.Equal(t, date(2026, 7, 12), stay.CheckOut())
		})

		t.Run("same-day stay rejected", func(t *testing.T) {
			_, err := booking.NewStayRange(date(2026, 7, 10), date(2026, 7, 10))
			require.ErrorIs(t, err, booking.ErrInvalidStayRange)
		})

		t.Run("reversed dates rejected", func(t *testing.T) {
			_, err := booking.NewStayRange(date(2026, 7, 12), date(2026, 7, 10))
			require.ErrorIs(t, err, booking.ErrInvalidStayRange)
		})

		t.Run("timestamps normalized to utc midnight", func(t *testing.T) {
			madrid, err := time.LoadLocation("Europe/Madrid")
			require.NoError(t, err)

			stay := mustStay(t,
				time.Date(2026, 7, 10, 15, 30, 0, 0, madrid),
				time.Date(2026, 7, 12, 9, 0, 0, 0, madrid),
			)
			assert.Equal(t, date(2026, 7, 10), stay.CheckIn())
			assert.Equal(t, date(2026, 7, 12), stay.CheckOut())
		})
	})

	t.Run("nights", func(t *testing.T) {
		assert.Equal(t, 2, mustStay(t, date(2026, 7, 10), date(2026, 7, 12)).Nights())
		assert.Equal(t, 1, mustStay(t, date(2026, 7, 10), date(2026, 7, 11)).Nights())
		assert.Equal(t, 31, mustStay(t, date(2026, 7, 1), date(2026, 8, 1)).Nights())
	})

	t.Run("overlaps", func(t *testing.T) {
		base := mustStay(t, date(2026, 7, 10), date(2026, 7, 14))

		cases := []struct {
			name     string
			other    booking.StayRange
			overlaps bool
		}{
			{"identical", mustStay(t, date(2026, 7, 10), date(2026, 7, 14)), true},
			{"partial from left", mustStay(t, date(2026, 7, 8), date(2026, 7, 11)), true},
			{"partial from right", mustStay(t, date(2026, 7, 13), date(2026, 7, 16)), true},
			{"contained", mustStay(t, date(2026, 7, 11), date(2026, 7, 12)), true},
			{"containing", mustStay(t, date(2026, 7, 8), date(2026, 7, 16)), true},
			{"back-to-back after", mustStay(t, date(2026, 7, 14), date(2026, 7, 16)), false},
			{"back-to-back before", mustStay(t, date(2026, 7, 8), date(2026, 7, 10)), false},
			{"disjoint", mustStay(t, date(2026, 7, 20), date(2026, 7, 22)), false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
				assert.Equal(t, tc.overlaps, tc.other.Overlaps(base), "overlap must be symmetric")
			})
		}
	})

	t.Run("string format", func(t *testing.T) {
		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 12))
		assert.Equal(t, "[2026-07-10,2026-07-12)", stay.String())
	})
}

func TestPhone(t *testing.T) {
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"nine digits ok", "600123456", true},
		{"fifteen digits ok", "346001234567890", true},
		{"too short", "60012345", false},
		{"too long", "3460012345678901", false},
		{"letters rejected", "60012345a", false},
		{"plus prefix rejected", "+34600123456", false},
		{"empty rejected", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			phone, err := booking.NewPhone(tc.value)
			if !tc.valid {
				require.ErrorIs(t, err, booking.ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, phone.String())
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("negative rejected", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		require.ErrorIs(t, err, booking.ErrNegativePrice)
	})

	t.Run("arithmetic", func(t *testing.T) {
		a, err := booking.NewMoney(1500)
		require.NoError(t, err)

		assert.Equal(t, int64(6000), a.Multiply(4).Cents())
		assert.Equal(t, int64(3000), a.Add(a).Cents())
	})
}
