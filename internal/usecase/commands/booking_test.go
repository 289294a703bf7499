//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"ridepool/internal/domain/trip"
	"ridepool/internal/pkg/clock"
	"ridepool/internal/pkg/errs"
	"ridepool/internal/usecase/commands"
	"ridepool/tests/common/builder"
	"ridepool/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newBookingFixture(t *testing.T) (commands.BookingCommands, *fake.UnitOfWork) {
	t.Helper()
	uow := fake.NewUnitOfWork()
	mockClock := clock.NewMockClock(time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC))
	return commands.NewBookingCommands(uow, mockClock), uow
}

func seedOpenTrip(t *testing.T, uow *fake.UnitOfWork, seats int) *trip.Trip {
	t.Helper()
	seeded, err := builder.NewTripBuilder().WithSeats(seats).BuildDomain()
	require.NoError(t, err)
	uow.SeedTrip(seeded)
	return seeded
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("admits and assigns sequential codes", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seedOpenTrip(t, uow, 4)

		first, err := engine.CreateReservation(ctx, 1, "Ana Lopez", 1)
		require.NoError(t, err)
		assert.Equal(t, "1-1", first.Code)
		assert.False(t, first.TripClosed)

		second, err := engine.CreateReservation(ctx, 1, "Juan Perez", 2)
		require.NoError(t, err)
		assert.Equal(t, "1-2", second.Code)
		assert.False(t, second.TripClosed)

		require.Len(t, uow.Reservations(), 2)
	})

	t.Run("unknown trip", func(t *testing.T) {
		engine, _ := newBookingFixture(t)

		_, err := engine.CreateReservation(ctx, 99, "Ana Lopez", 1)
		require.ErrorIs(t, err, errs.ErrTripNotFound)
	})

	t.Run("unknown trip wins over invalid seat count", func(t *testing.T) {
		engine, _ := newBookingFixture(t)

		_, err := engine.CreateReservation(ctx, 99, "Ana Lopez", 0)
		require.ErrorIs(t, err, errs.ErrTripNotFound)
	})

	t.Run("owner cannot book own trip", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seeded := seedOpenTrip(t, uow, 4)

		_, err := engine.CreateReservation(ctx, 1, seeded.Owner(), 1)
		require.ErrorIs(t, err, errs.ErrSelfBooking)
	})

	t.Run("closed trip refuses", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seeded, err := builder.NewTripBuilder().AsClosed().BuildDomain()
		require.NoError(t, err)
		uow.SeedTrip(seeded)

		_, err = engine.CreateReservation(ctx, 1, "Ana Lopez", 1)
		require.ErrorIs(t, err, errs.ErrTripNotAvailable)
	})

	t.Run("cancelled trip refuses", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seeded, err := builder.NewTripBuilder().AsCancelled().BuildDomain()
		require.NoError(t, err)
		uow.SeedTrip(seeded)

		_, err = engine.CreateReservation(ctx, 1, "Ana Lopez", 1)
		require.ErrorIs(t, err, errs.ErrTripNotAvailable)
	})

	t.Run("closed trip wins over invalid seat count", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seeded, err := builder.NewTripBuilder().AsClosed().BuildDomain()
		require.NoError(t, err)
		uow.SeedTrip(seeded)

		_, err = engine.CreateReservation(ctx, 1, "Ana Lopez", 0)
		require.ErrorIs(t, err, errs.ErrTripNotAvailable)
	})

	t.Run("invalid seat count", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seedOpenTrip(t, uow, 4)

		for _, seats := range []int{0, -3} {
			_, err := engine.CreateReservation(ctx, 1, "Ana Lopez", seats)
			require.ErrorIs(t, err, errs.ErrInvalidSeatCount)
		}
		assert.Empty(t, uow.Reservations())
	})

	t.Run("insufficient seats", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seedOpenTrip(t, uow, 4)

		_, err := engine.CreateReservation(ctx, 1, "Ana Lopez", 3)
		require.NoError(t, err)

		_, err = engine.CreateReservation(ctx, 1, "Juan Perez", 2)
		require.ErrorIs(t, err, errs.ErrInsufficientSeats)

		// the failed attempt must not leak a reservation
		require.Len(t, uow.Reservations(), 1)
	})

	t.Run("insufficient seats wins over duplicate", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seedOpenTrip(t, uow, 4)

		_, err := engine.CreateReservation(ctx, 1, "Ana Lopez", 3)
		require.NoError(t, err)

		_, err = engine.CreateReservation(ctx, 1, "Ana Lopez", 2)
		require.ErrorIs(t, err, errs.ErrInsufficientSeats)
	})

	t.Run("duplicate user on same trip", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seedOpenTrip(t, uow, 4)

		_, err := engine.CreateReservation(ctx, 1, "Ana Lopez", 1)
		require.NoError(t, err)

		_, err = engine.CreateReservation(ctx, 1, "Ana Lopez", 1)
		require.ErrorIs(t, err, errs.ErrDuplicateReservation)
	})

	t.Run("last seat closes the trip", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seedOpenTrip(t, uow, 4)

		_, err := engine.CreateReservation(ctx, 1, "Ana Lopez", 2)
		require.NoError(t, err)

		result, err := engine.CreateReservation(ctx, 1, "Juan Perez", 2)
		require.NoError(t, err)
		assert.True(t, result.TripClosed)

		stored := uow.Trip(1)
		require.NotNil(t, stored)
		assert.Equal(t, trip.StatusClosed, stored.Status())

		_, err = engine.CreateReservation(ctx, 1, "Maria Gomez", 1)
		require.ErrorIs(t, err, errs.ErrTripNotAvailable)
	})

	t.Run("three riders on a three seat trip", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seeded, err := builder.NewTripBuilder().WithOwner("Ana Lopez").WithSeats(3).BuildDomain()
		require.NoError(t, err)
		uow.SeedTrip(seeded)

		first, err := engine.CreateReservation(ctx, 1, "Juan Perez", 2)
		require.NoError(t, err)
		assert.False(t, first.TripClosed)

		second, err := engine.CreateReservation(ctx, 1, "Maria Gomez", 1)
		require.NoError(t, err)
		assert.True(t, second.TripClosed)

		_, err = engine.CreateReservation(ctx, 1, "Luis Ruiz", 1)
		require.ErrorIs(t, err, errs.ErrTripNotAvailable)

		_, err = engine.CreateReservation(ctx, 1, "Ana Lopez", 1)
		require.ErrorIs(t, err, errs.ErrSelfBooking)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		uow.FailWith = errs.ErrStoreFailure

		_, err := engine.CreateReservation(ctx, 1, "Ana Lopez", 1)
		require.ErrorIs(t, err, errs.ErrStoreFailure)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("frees the seats", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seedOpenTrip(t, uow, 4)

		result, err := engine.CreateReservation(ctx, 1, "Ana Lopez", 3)
		require.NoError(t, err)

		require.NoError(t, engine.CancelReservation(ctx, result.Code))
		assert.Empty(t, uow.Reservations())

		// capacity is available again
		_, err = engine.CreateReservation(ctx, 1, "Juan Perez", 4)
		require.NoError(t, err)
	})

	t.Run("unknown code", func(t *testing.T) {
		engine, _ := newBookingFixture(t)

		err := engine.CancelReservation(ctx, "1-9")
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("cancelling on a full trip does not reopen it", func(t *testing.T) {
		engine, uow := newBookingFixture(t)
		seedOpenTrip(t, uow, 4)

		_, err := engine.CreateReservation(ctx, 1, "Ana Lopez", 2)
		require.NoError(t, err)
		result, err := engine.CreateReservation(ctx, 1, "Juan Perez", 2)
		require.NoError(t, err)
		require.True(t, result.TripClosed)

		require.NoError(t, engine.CancelReservation(ctx, result.Code))

		stored := uow.Trip(1)
		require.NotNil(t, stored)
		assert.Equal(t, trip.StatusClosed, stored.Status())

		_, err = engine.CreateReservation(ctx, 1, "Maria Gomez", 1)
		require.ErrorIs(t, err, errs.ErrTripNotAvailable)
	})
}

func TestCreateReservationConcurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("one seat short of the demand", func(t *testing.T) {
		const riders = 8

		engine, uow := newBookingFixture(t)
		seedOpenTrip(t, uow, riders-1)

		var (
			mu       sync.Mutex
			codes    []string
			failures []error
		)

		var g errgroup.Group
		for i := 0; i < riders; i++ {
			user := fmt.Sprintf("Rider %c", 'A'+i)
			g.Go(func() error {
				result, err := engine.CreateReservation(ctx, 1, user, 1)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failures = append(failures, err)
					return nil
				}
				codes = append(codes, result.Code)
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Len(t, codes, riders-1, "exactly capacity many bookings must win")
		require.Len(t, failures, 1)
		// the loser either found too few seats or arrived after the last
		// seat closed the trip; both mean the capacity held
		loser := failures[0]
		if !errors.Is(loser, errs.ErrInsufficientSeats) && !errors.Is(loser, errs.ErrTripNotAvailable) {
			t.Fatalf("unexpected loser error: %v", loser)
		}

		seen := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			_, dup := seen[code]
			assert.False(t, dup, "code %s assigned twice", code)
			seen[code] = struct{}{}
		}

		stored := uow.Trip(1)
		require.NotNil(t, stored)
		assert.Equal(t, trip.StatusClosed, stored.Status())
	})

	t.Run("oversubscribed without filling", func(t *testing.T) {
		const riders = 4

		engine, uow := newBookingFixture(t)
		seedOpenTrip(t, uow, 5)

		var (
			mu        sync.Mutex
			wins      int
			shortfall int
		)

		var g errgroup.Group
		for i := 0; i < riders; i++ {
			user := fmt.Sprintf("Rider %c", 'A'+i)
			g.Go(func() error {
				_, err := engine.CreateReservation(ctx, 1, user, 2)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					wins++
				default:
					assert.ErrorIs(t, err, errs.ErrInsufficientSeats)
					shortfall++
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, 2, wins)
		assert.Equal(t, riders-2, shortfall)

		// one seat left, trip still open
		stored := uow.Trip(1)
		require.NotNil(t, stored)
		assert.Equal(t, trip.StatusOpen, stored.Status())
	})
}
