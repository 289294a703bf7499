package readstore

import (
	"context"

	"ridepool/internal/infra/repository"
	"ridepool/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db repository.DB
}

func NewReservationReadStore(db repository.DB) queries.ReservationViewRepo {
	return &ReservationReadStore{db: db}
}

func (s *ReservationReadStore) FindByCode(ctx context.Context, code string) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := s.db.QueryRow(ctx,
		`SELECT r.code, r.username, r.seats, r.created_at, r.trip_id, t.route
		 FROM reservations r
		 JOIN trips t ON t.id = r.trip_id
		 WHERE r.code = $1`,
		code,
	).Scan(&v.Code, &v.User, &v.Seats, &v.CreatedAt, &v.TripID, &v.TripRoute)
	if err != nil {
		return nil, wrapReadErr("failed to find reservation view", err)
	}
	return &v, nil
}

func (s *ReservationReadStore) FindByUser(ctx context.Context, user string) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT code, username, seats, created_at, trip_id
		 FROM reservations
		 WHERE username = $1
		 ORDER BY created_at`,
		user,
	)
	if err != nil {
		return nil, wrapReadErr("failed to list reservation views by user", err)
	}
	defer rows.Close()

	return collectReservationItems(rows)
}

func (s *ReservationReadStore) FindByTrip(ctx context.Context, tripID int64) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT code, username, seats, created_at, trip_id
		 FROM reservations
		 WHERE trip_id = $1
		 ORDER BY created_at`,
		tripID,
	)
	if err != nil {
		return nil, wrapReadErr("failed to list reservation views by trip", err)
	}
	defer rows.Close()

	return collectReservationItems(rows)
}

func collectReservationItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	var items []*queries.ReservationListItem
	for rows.Next() {
		var it queries.ReservationListItem
		if err := rows.Scan(&it.Code, &it.User, &it.Seats, &it.CreatedAt, &it.TripID); err != nil {
			return nil, wrapReadErr("failed to scan reservation view", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read reservation views", err)
	}
	return items, nil
}
