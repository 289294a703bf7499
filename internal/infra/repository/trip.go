package repository

import (
	"context"
	"time"

	"ridepool/internal/domain/trip"
	"ridepool/internal/infra"
	"ridepool/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type TripRepository struct {
	db DB
}

func NewTripRepository(db DB) shared.TripStore {
	return &TripRepository{db: db}
}

const tripColumns = `id, owner, route, departure_at, duration_min, price_cents, seats_offered, status`

func scanTrip(row pgx.Row) (*trip.Trip, error) {
	var (
		id           int64
		owner        string
		routeStr     string
		departureAt  time.Time
		durationMin  int
		priceCents   int64
		seatsOffered int
		statusStr    string
	)

	if err := row.Scan(&id, &owner, &routeStr, &departureAt, &durationMin, &priceCents, &seatsOffered, &statusStr); err != nil {
		return nil, err
	}

	status, err := trip.ParseStatus(statusStr)
	if err != nil {
		return nil, err
	}

	route, err := trip.NewRoute(routeStr)
	if err != nil {
		return nil, err
	}

	return trip.ReconstructTrip(
		id,
		owner,
		route,
		departureAt,
		durationMin,
		trip.NewMoney(priceCents),
		seatsOffered,
		status,
	), nil
}

func (r *TripRepository) FindAll(ctx context.Context) ([]*trip.Trip, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+tripColumns+` FROM trips ORDER BY id`,
	)
	if err != nil {
		return nil, wrapPgErr("failed to list trips", err)
	}
	defer rows.Close()

	return collectTrips(rows)
}

func (r *TripRepository) FindByRoute(ctx context.Context, text string) ([]*trip.Trip, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE route LIKE '%' || $1 || '%' ORDER BY id`,
		text,
	)
	if err != nil {
		return nil, wrapPgErr("failed to search trips by route", err)
	}
	defer rows.Close()

	return collectTrips(rows)
}

func (r *TripRepository) FindByID(ctx context.Context, id int64) (*trip.Trip, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE id = $1`,
		id,
	)

	t, err := scanTrip(row)
	if err != nil {
		return nil, wrapPgErr("failed to find trip", err)
	}
	return t, nil
}

func (r *TripRepository) Create(ctx context.Context, t *trip.Trip) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO trips (owner, route, departure_at, duration_min, price_cents, seats_offered, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		t.Owner(), t.Route().String(), t.DepartureAt(), t.DurationMin(),
		t.Price().Cents(), t.SeatsOffered(), t.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, wrapPgErr("failed to create trip", err)
	}
	return id, nil
}

func (r *TripRepository) Update(ctx context.Context, t *trip.Trip) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE trips
		 SET owner = $2, route = $3, departure_at = $4, duration_min = $5,
		     price_cents = $6, seats_offered = $7, status = $8
		 WHERE id = $1`,
		t.ID(), t.Owner(), t.Route().String(), t.DepartureAt(), t.DurationMin(),
		t.Price().Cents(), t.SeatsOffered(), t.Status().String(),
	)
	if err != nil {
		return wrapPgErr("failed to update trip", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "trip does not exist", nil)
	}
	return nil
}

func (r *TripRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete trip", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "trip does not exist", nil)
	}
	return nil
}

func collectTrips(rows pgx.Rows) ([]*trip.Trip, error) {
	var trips []*trip.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, wrapPgErr("failed to scan trip", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read trips", err)
	}
	return trips, nil
}
