//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"ridepool/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		code := reservation.NewCode(7, 1)
		actual, err := reservation.NewReservation(code, "Ada Lovelace", 2, 7, now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "7-1", actual.Code().String())
		assert.Equal(t, "Ada Lovelace", actual.User())
		assert.Equal(t, 2, actual.Seats())
		assert.Equal(t, int64(7), actual.TripID())
		assert.Equal(t, now, actual.CreatedAt())
		assert.True(t, actual.BelongsTo("Ada Lovelace"))
		assert.False(t, actual.BelongsTo("Grace Hopper"))
	})

	t.Run("empty user", func(t *testing.T) {
		_, err := reservation.NewReservation(reservation.NewCode(7, 1), "", 2, 7, now)
		require.ErrorIs(t, err, reservation.ErrEmptyUser)
	})

	t.Run("seat count below one", func(t *testing.T) {
		for _, seats := range []int{0, -1} {
			_, err := reservation.NewReservation(reservation.NewCode(7, 1), "Ada Lovelace", seats, 7, now)
			require.ErrorIs(t, err, reservation.ErrNonPositiveSeats)
		}
	})
}

func TestCode(t *testing.T) {
	t.Run("sequence numbering", func(t *testing.T) {
		assert.Equal(t, "12-1", reservation.NewCode(12, 1).String())
		assert.Equal(t, "12-3", reservation.NewCode(12, 3).String())
		assert.Equal(t, int64(12), reservation.NewCode(12, 3).TripID())
	})

	t.Run("parse valid codes", func(t *testing.T) {
		code, err := reservation.ParseCode("42-7")
		require.NoError(t, err)
		assert.Equal(t, "42-7", code.String())
		assert.Equal(t, int64(42), code.TripID())
	})

	t.Run("parse invalid codes", func(t *testing.T) {
		for _, raw := range []string{"", "42", "42-", "-7", "abc-1", "42-0", "42-x"} {
			_, err := reservation.ParseCode(raw)
			assert.ErrorIs(t, err, reservation.ErrInvalidCode, "code %q", raw)
		}
	})
}
