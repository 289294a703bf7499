package readstore

import (
	"context"

	"ridepool/internal/infra/repository"
	"ridepool/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

// TripReadStore serves the query side with flat trip views. Seat totals and
// the has-reservations flag are recomputed from the reservations table on
// every read; they are informational, never used for admission.
type TripReadStore struct {
	db repository.DB
}

func NewTripReadStore(db repository.DB) queries.TripViewRepo {
	return &TripReadStore{db: db}
}

const tripViewQuery = `
	SELECT t.id, t.owner, t.route, t.departure_at, t.duration_min,
	       t.price_cents, t.seats_offered, t.status,
	       COALESCE(SUM(r.seats), 0)::INT AS seats_reserved,
	       COUNT(r.code) > 0 AS has_reservations
	FROM trips t
	LEFT JOIN reservations r ON r.trip_id = t.id`

func (s *TripReadStore) FindAll(ctx context.Context) ([]*queries.TripView, error) {
	rows, err := s.db.Query(ctx, tripViewQuery+`
		GROUP BY t.id
		ORDER BY t.id`,
	)
	if err != nil {
		return nil, wrapReadErr("failed to list trip views", err)
	}
	defer rows.Close()

	return collectTripViews(rows)
}

func (s *TripReadStore) FindByDestination(ctx context.Context, text string) ([]*queries.TripView, error) {
	rows, err := s.db.Query(ctx, tripViewQuery+`
		WHERE t.route LIKE '%' || $1 || '%'
		GROUP BY t.id
		ORDER BY t.id`,
		text,
	)
	if err != nil {
		return nil, wrapReadErr("failed to search trip views", err)
	}
	defer rows.Close()

	return collectTripViews(rows)
}

func (s *TripReadStore) FindByID(ctx context.Context, id int64) (*queries.TripView, error) {
	row := s.db.QueryRow(ctx, tripViewQuery+`
		WHERE t.id = $1
		GROUP BY t.id`,
		id,
	)

	view, err := scanTripView(row)
	if err != nil {
		return nil, wrapReadErr("failed to find trip view", err)
	}
	return view, nil
}

func scanTripView(row pgx.Row) (*queries.TripView, error) {
	var v queries.TripView
	err := row.Scan(
		&v.ID, &v.Owner, &v.Route, &v.DepartureAt, &v.DurationMin,
		&v.PriceCents, &v.SeatsOffered, &v.Status,
		&v.SeatsReserved, &v.HasReservations,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectTripViews(rows pgx.Rows) ([]*queries.TripView, error) {
	var views []*queries.TripView
	for rows.Next() {
		v, err := scanTripView(rows)
		if err != nil {
			return nil, wrapReadErr("failed to scan trip view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read trip views", err)
	}
	return views, nil
}
