package reservation

import (
	"errors"
	"time"
)

var (
	ErrEmptyUser        = errors.New("user must not be empty")
	ErrNonPositiveSeats = errors.New("requested seat count must be at least 1")
)

// Reservation is a rider's claim on a number of seats on one trip. It is
// created only through the booking engine's admission check and never mutated
// afterwards; cancellation removes it.
type Reservation struct {
	code      Code
	user      string
	seats     int
	createdAt time.Time
	tripID    int64
}

func NewReservation(code Code, user string, seats int, tripID int64, now time.Time) (*Reservation, error) {
	if user == "" {
		return nil, ErrEmptyUser
	}
	if seats < 1 {
		return nil, ErrNonPositiveSeats
	}

	return &Reservation{
		code:      code,
		user:      user,
		seats:     seats,
		createdAt: now,
		tripID:    tripID,
	}, nil
}

// ReconstructReservation rebuilds a reservation from stored state. Only
// stores should call this.
func ReconstructReservation(code Code, user string, seats int, createdAt time.Time, tripID int64) *Reservation {
	return &Reservation{
		code:      code,
		user:      user,
		seats:     seats,
		createdAt: createdAt,
		tripID:    tripID,
	}
}

func (r *Reservation) Code() Code           { return r.code }
func (r *Reservation) User() string         { return r.user }
func (r *Reservation) Seats() int           { return r.seats }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) TripID() int64        { return r.tripID }

func (r *Reservation) BelongsTo(user string) bool {
	return r.user == user
}
