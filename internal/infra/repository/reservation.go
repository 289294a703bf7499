package repository

import (
	"context"
	"time"

	"ridepool/internal/domain/reservation"
	"ridepool/internal/infra"
	"ridepool/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db DB
}

func NewReservationRepository(db DB) shared.ReservationStore {
	return &ReservationRepository{db: db}
}

const reservationColumns = `code, username, seats, created_at, trip_id`

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		codeStr   string
		user      string
		seats     int
		createdAt time.Time
		tripID    int64
	)

	if err := row.Scan(&codeStr, &user, &seats, &createdAt, &tripID); err != nil {
		return nil, err
	}

	code, err := reservation.ParseCode(codeStr)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(code, user, seats, createdAt, tripID), nil
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY created_at`,
	)
	if err != nil {
		return nil, wrapPgErr("failed to list reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) FindByCode(ctx context.Context, code string) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE code = $1`,
		code,
	)

	res, err := scanReservation(row)
	if err != nil {
		return nil, wrapPgErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindAllByUser(ctx context.Context, user string) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE username = $1 ORDER BY created_at`,
		user,
	)
	if err != nil {
		return nil, wrapPgErr("failed to list reservations by user", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) FindAllByTrip(ctx context.Context, tripID int64) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE trip_id = $1 ORDER BY created_at`,
		tripID,
	)
	if err != nil {
		return nil, wrapPgErr("failed to list reservations by trip", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) FindByUserAndTrip(ctx context.Context, user string, tripID int64) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE username = $1 AND trip_id = $2`,
		user, tripID,
	)

	res, err := scanReservation(row)
	if err != nil {
		return nil, wrapPgErr("failed to find reservation by user and trip", err)
	}
	return res, nil
}

func (r *ReservationRepository) SumSeatsForTrip(ctx context.Context, tripID int64) (int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(seats), 0) FROM reservations WHERE trip_id = $1`,
		tripID,
	).Scan(&total)
	if err != nil {
		return 0, wrapPgErr("failed to sum reserved seats", err)
	}
	return total, nil
}

func (r *ReservationRepository) CountForTrip(ctx context.Context, tripID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE trip_id = $1`,
		tripID,
	).Scan(&count)
	if err != nil {
		return 0, wrapPgErr("failed to count reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reservations (code, username, seats, created_at, trip_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		res.Code().String(), res.User(), res.Seats(), res.CreatedAt(), res.TripID(),
	)
	if err != nil {
		return wrapPgErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations
		 SET username = $2, seats = $3, created_at = $4, trip_id = $5
		 WHERE code = $1`,
		res.Code().String(), res.User(), res.Seats(), res.CreatedAt(), res.TripID(),
	)
	if err != nil {
		return wrapPgErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation does not exist", nil)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE code = $1`, code)
	if err != nil {
		return wrapPgErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation does not exist", nil)
	}
	return nil
}

func collectReservations(rows pgx.Rows) ([]*reservation.Reservation, error) {
	var reservations []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, wrapPgErr("failed to scan reservation", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read reservations", err)
	}
	return reservations, nil
}
