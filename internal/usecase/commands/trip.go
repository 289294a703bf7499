package commands

import (
	"context"
	"time"

	"ridepool/internal/domain/trip"
	"ridepool/internal/infra"
	"ridepool/internal/pkg/errs"
	"ridepool/internal/usecase/shared"
)

type PublishTripInput struct {
	Owner       string
	Route       string
	DepartureAt time.Time
	DurationMin int
	PriceCents  int64
	Seats       int
}

type TripCommands interface {
	// Publish persists a new open trip and returns its store-assigned id.
	Publish(ctx context.Context, in PublishTripInput) (int64, error)
	// Close transitions an open trip to closed. Idempotent on closed trips.
	Close(ctx context.Context, tripID int64) error
	// Cancel transitions an open trip to cancelled. Closed and cancelled
	// trips refuse.
	Cancel(ctx context.Context, tripID int64) error
}

type tripCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewTripCommands(uow shared.UnitOfWork) TripCommands {
	return &tripCommandsImpl{uow: uow}
}

func (t *tripCommandsImpl) Publish(ctx context.Context, in PublishTripInput) (int64, error) {
	route, err := trip.NewRoute(in.Route)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrInvalidTrip)
	}

	entity, err := trip.NewTrip(
		in.Owner,
		route,
		in.DepartureAt,
		in.DurationMin,
		trip.NewMoney(in.PriceCents),
		in.Seats,
	)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrInvalidTrip)
	}

	var id int64
	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Trips().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreFailure)
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (t *tripCommandsImpl) Close(ctx context.Context, tripID int64) error {
	return t.transition(ctx, tripID, func(entity *trip.Trip) error {
		return entity.Close()
	})
}

func (t *tripCommandsImpl) Cancel(ctx context.Context, tripID int64) error {
	return t.transition(ctx, tripID, func(entity *trip.Trip) error {
		return entity.Cancel()
	})
}

func (t *tripCommandsImpl) transition(ctx context.Context, tripID int64, apply func(*trip.Trip) error) error {
	return t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Trips().FindByID(ctx, tripID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrTripNotFound
			}
			return errs.Mark(err, errs.ErrStoreFailure)
		}

		before := entity.Status()
		if err := apply(entity); err != nil {
			return errs.Mark(err, errs.ErrTripNotOpen)
		}
		if entity.Status() == before {
			return nil
		}

		if err := tx.Trips().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrStoreFailure)
		}
		return nil
	})
}
