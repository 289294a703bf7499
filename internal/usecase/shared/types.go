package shared

import (
	"context"

	"ridepool/internal/domain/reservation"
	"ridepool/internal/domain/trip"
)

// TripStore is the persistence contract for trips. Lookups return fully
// materialized entities; absence surfaces as infra.KindNotFound.
type TripStore interface {
	FindAll(ctx context.Context) ([]*trip.Trip, error)
	FindByRoute(ctx context.Context, text string) ([]*trip.Trip, error)
	FindByID(ctx context.Context, id int64) (*trip.Trip, error)
	// Create persists the trip and returns the store-assigned id.
	Create(ctx context.Context, t *trip.Trip) (int64, error)
	Update(ctx context.Context, t *trip.Trip) error
	Delete(ctx context.Context, id int64) error
}

// ReservationStore is the persistence contract for reservations.
type ReservationStore interface {
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
	FindByCode(ctx context.Context, code string) (*reservation.Reservation, error)
	FindAllByUser(ctx context.Context, user string) ([]*reservation.Reservation, error)
	FindAllByTrip(ctx context.Context, tripID int64) ([]*reservation.Reservation, error)
	FindByUserAndTrip(ctx context.Context, user string, tripID int64) (*reservation.Reservation, error)
	// SumSeatsForTrip returns the total seats reserved on the trip, 0 if none.
	SumSeatsForTrip(ctx context.Context, tripID int64) (int, error)
	// CountForTrip returns how many reservations exist for the trip; the next
	// reservation code sequence number is count+1.
	CountForTrip(ctx context.Context, tripID int64) (int, error)
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, code string) error
}
