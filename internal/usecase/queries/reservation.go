package queries

import (
	"context"

	"ridepool/internal/infra"
	"ridepool/internal/pkg/errs"
)

type ReservationQueries interface {
	GetByCode(ctx context.Context, code string) (*ReservationView, error)
	ListByUser(ctx context.Context, user string) ([]*ReservationListItem, error)
	ListByTrip(ctx context.Context, tripID int64) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByCode(ctx context.Context, code string) (*ReservationView, error)
	FindByUser(ctx context.Context, user string) ([]*ReservationListItem, error)
	FindByTrip(ctx context.Context, tripID int64) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByCode(ctx context.Context, code string) (*ReservationView, error) {
	view, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, user string) ([]*ReservationListItem, error) {
	items, err := q.repo.FindByUser(ctx, user)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}
	return items, nil
}

func (q *reservationQueriesImpl) ListByTrip(ctx context.Context, tripID int64) ([]*ReservationListItem, error) {
	items, err := q.repo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreFailure)
	}
	return items, nil
}
