package shared

import (
	"context"
)

// UnitOfWork runs a function inside a single atomic scope. Every admission
// decision (load trip, sum seats, duplicate check, insert, closure) happens
// inside one Within call so concurrent bookings on the same trip cannot
// interleave partial state.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on conflict
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Trips() TripStore
	Reservations() ReservationStore
}
