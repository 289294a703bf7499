package queries

import (
	"context"

	"ridepool/internal/infra"
	"ridepool/internal/pkg/errs"
)

type TripQueries interface {
	// List returns all trips, each flagged with whether reservations exist.
	List(ctx context.Context) ([]*TripView, error)
	// SearchByDestination filters trips whose route contains text; collation
	// and case sensitivity follow the store's text-search semantics.
	SearchByDestination(ctx context.Context, text string) ([]*TripView, error)
	// GetByID returns the trip together with its reservations.
	GetByID(ctx context.Context, id int64) (*TripDetailView, error)
}

type TripViewRepo interface {
	FindAll(ctx context.Context) ([]*TripView, error)
	FindByDestination(ctx context.Context, text string) ([]*TripView, error)
	FindByID(ctx context.Context, id int64) (*TripView, error)
}

type tripQueriesImpl struct {
	trips        TripViewRepo
	reservations ReservationViewRepo
}

func NewTripQueries(trips TripViewRepo, reservations ReservationViewRepo) TripQueries {
	return &tripQueriesImpl{
		trips:        trips,
		reservations: reservations,
	}
}

func (q *tripQueriesImpl) List(ctx context.Context) ([]*TripView, error) {
	views, err := q.trips.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}
	return views, nil
}

func (q *tripQueriesImpl) SearchByDestination(ctx context.Context, text string) ([]*TripView, error) {
	views, err := q.trips.FindByDestination(ctx, text)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}
	return views, nil
}

func (q *tripQueriesImpl) GetByID(ctx context.Context, id int64) (*TripDetailView, error) {
	view, err := q.trips.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTripNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}

	items, err := q.reservations.FindByTrip(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}

	return &TripDetailView{
		Trip:         view,
		Reservations: items,
	}, nil
}
