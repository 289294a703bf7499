package commands

import (
	"context"

	"ridepool/internal/domain/reservation"
	"ridepool/internal/domain/trip"
	"ridepool/internal/infra"
	"ridepool/internal/pkg/clock"
	"ridepool/internal/pkg/errs"
	"ridepool/internal/usecase/shared"
)

type CreateReservationResult struct {
	Code       string
	TripClosed bool
}

type BookingCommands interface {
	// CreateReservation admits and persists a reservation for user on the
	// given trip. The whole decision runs in one unit of work: when the last
	// seat is taken the trip is closed in the same transaction.
	CreateReservation(ctx context.Context, tripID int64, user string, seats int) (*CreateReservationResult, error)
	// CancelReservation removes the reservation. A closed trip stays closed
	// even when its seats free up again.
	CancelReservation(ctx context.Context, code string) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (b *bookingCommandsImpl) CreateReservation(
	ctx context.Context,
	tripID int64,
	user string,
	seats int,
) (*CreateReservationResult, error) {
	var result *CreateReservationResult

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		admitted, err := b.admit(ctx, tx, tripID, user, seats)
		if err != nil {
			return err
		}

		code, err := b.nextCode(ctx, tx, tripID)
		if err != nil {
			return err
		}

		res, err := reservation.NewReservation(code, user, seats, tripID, b.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidSeatCount)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateReservation
			}
			return errs.Mark(err, errs.ErrStoreFailure)
		}

		closed, err := b.closeIfFull(ctx, tx, admitted)
		if err != nil {
			return err
		}

		result = &CreateReservationResult{
			Code:       code.String(),
			TripClosed: closed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// admit evaluates the admission rules in order, short-circuiting on the first
// violation, and returns the trip when the reservation may proceed.
func (b *bookingCommandsImpl) admit(
	ctx context.Context,
	tx shared.Tx,
	tripID int64,
	user string,
	seats int,
) (*trip.Trip, error) {
	t, err := tx.Trips().FindByID(ctx, tripID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTripNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}

	if t.IsOwnedBy(user) {
		return nil, errs.ErrSelfBooking
	}

	if !t.IsOpen() {
		return nil, errs.ErrTripNotAvailable
	}

	if seats < 1 {
		return nil, errs.ErrInvalidSeatCount
	}

	reserved, err := tx.Reservations().SumSeatsForTrip(ctx, tripID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}
	if !t.Fits(reserved, seats) {
		return nil, errs.ErrInsufficientSeats
	}

	existing, err := tx.Reservations().FindByUserAndTrip(ctx, user, tripID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}
	if existing != nil {
		return nil, errs.ErrDuplicateReservation
	}

	return t, nil
}

// nextCode derives the reservation code from the current per-trip count. It
// runs inside the admission transaction so two concurrent bookings cannot
// observe the same sequence number.
func (b *bookingCommandsImpl) nextCode(ctx context.Context, tx shared.Tx, tripID int64) (reservation.Code, error) {
	count, err := tx.Reservations().CountForTrip(ctx, tripID)
	if err != nil {
		return reservation.Code{}, errs.Mark(err, errs.ErrStoreFailure)
	}
	return reservation.NewCode(tripID, count+1), nil
}

// closeIfFull re-sums the reserved seats after the insert and closes the trip
// when capacity is exhausted. Calling it on an already-closed trip is a no-op.
func (b *bookingCommandsImpl) closeIfFull(ctx context.Context, tx shared.Tx, t *trip.Trip) (bool, error) {
	total, err := tx.Reservations().SumSeatsForTrip(ctx, t.ID())
	if err != nil {
		return false, errs.Mark(err, errs.ErrStoreFailure)
	}
	if total != t.SeatsOffered() {
		return false, nil
	}

	if err := t.Close(); err != nil {
		return false, errs.Mark(err, errs.ErrTripNotAvailable)
	}
	if err := tx.Trips().Update(ctx, t); err != nil {
		return false, errs.Mark(err, errs.ErrStoreFailure)
	}
	return true, nil
}

func (b *bookingCommandsImpl) CancelReservation(ctx context.Context, code string) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrStoreFailure)
		}

		if err := tx.Reservations().Delete(ctx, res.Code().String()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrStoreFailure)
		}
		return nil
	})
}
