package trip

import (
	"errors"
	"time"
)

var (
	ErrNonPositiveSeats    = errors.New("offered seat count must be at least 1")
	ErrNonPositivePrice    = errors.New("price must be positive")
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrTripTerminal        = errors.New("trip is already closed or cancelled")
)

// Trip is a published ride with a fixed seat capacity. The seat count never
// changes after creation; availability is derived from the reservations held
// against it.
type Trip struct {
	id           int64
	owner        string
	route        Route
	departureAt  time.Time
	durationMin  int
	price        Money
	seatsOffered int
	status       Status
}

// NewTrip builds an open trip ready to be persisted. The id is zero until the
// store assigns one.
func NewTrip(
	owner string,
	route Route,
	departureAt time.Time,
	durationMin int,
	price Money,
	seatsOffered int,
) (*Trip, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	if seatsOffered < 1 {
		return nil, ErrNonPositiveSeats
	}
	if !price.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	if durationMin < 1 {
		return nil, ErrNonPositiveDuration
	}

	return &Trip{
		owner:        owner,
		route:        route,
		departureAt:  departureAt,
		durationMin:  durationMin,
		price:        price,
		seatsOffered: seatsOffered,
		status:       StatusOpen,
	}, nil
}

// ReconstructTrip rebuilds a trip from stored state, bypassing creation
// validation. Only stores should call this.
func ReconstructTrip(
	id int64,
	owner string,
	route Route,
	departureAt time.Time,
	durationMin int,
	price Money,
	seatsOffered int,
	status Status,
) *Trip {
	return &Trip{
		id:           id,
		owner:        owner,
		route:        route,
		departureAt:  departureAt,
		durationMin:  durationMin,
		price:        price,
		seatsOffered: seatsOffered,
		status:       status,
	}
}

func (t *Trip) ID() int64              { return t.id }
func (t *Trip) Owner() string          { return t.owner }
func (t *Trip) Route() Route           { return t.route }
func (t *Trip) DepartureAt() time.Time { return t.departureAt }
func (t *Trip) DurationMin() int       { return t.durationMin }
func (t *Trip) Price() Money           { return t.price }
func (t *Trip) SeatsOffered() int      { return t.seatsOffered }
func (t *Trip) Status() Status         { return t.status }

func (t *Trip) IsOpen() bool {
	return t.status == StatusOpen
}

func (t *Trip) IsOwnedBy(user string) bool {
	return t.owner == user
}

// Close transitions the trip to closed. Closing an already-closed trip is a
// no-op; a cancelled trip cannot be closed.
func (t *Trip) Close() error {
	switch t.status {
	case StatusClosed:
		return nil
	case StatusCancelled:
		return ErrTripTerminal
	default:
		t.status = StatusClosed
		return nil
	}
}

// Cancel transitions an open trip to cancelled. Terminal states refuse.
func (t *Trip) Cancel() error {
	if t.status.IsTerminal() {
		return ErrTripTerminal
	}
	t.status = StatusCancelled
	return nil
}

// SeatsFree returns the seats still available given the reserved total.
func (t *Trip) SeatsFree(reserved int) int {
	free := t.seatsOffered - reserved
	if free < 0 {
		return 0
	}
	return free
}

// Fits reports whether requested seats fit on top of the reserved total.
func (t *Trip) Fits(reserved, requested int) bool {
	return reserved+requested <= t.seatsOffered
}
