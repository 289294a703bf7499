//go:build unit || e2e

package builder

import (
	"time"

	"ridepool/internal/domain/reservation"
	"ridepool/internal/usecase/queries"
)

type ReservationBuilder struct {
	TripID    int64
	Seq       int
	User      string
	Seats     int
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		TripID:    1,
		Seq:       1,
		User:      "Ada Lovelace",
		Seats:     2,
		CreatedAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		reservation.NewCode(b.TripID, b.Seq),
		b.User,
		b.Seats,
		b.CreatedAt,
		b.TripID,
	)
}

func (b *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	return &queries.ReservationView{
		Code:      reservation.NewCode(b.TripID, b.Seq).String(),
		User:      b.User,
		Seats:     b.Seats,
		CreatedAt: b.CreatedAt,
		TripID:    b.TripID,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		Code:      reservation.NewCode(b.TripID, b.Seq).String(),
		User:      b.User,
		Seats:     b.Seats,
		CreatedAt: b.CreatedAt,
		TripID:    b.TripID,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithTripID(tripID int64) *ReservationBuilder {
	b.TripID = tripID
	return b
}

func (b *ReservationBuilder) WithSeq(seq int) *ReservationBuilder {
	b.Seq = seq
	return b
}

func (b *ReservationBuilder) WithUser(user string) *ReservationBuilder {
	b.User = user
	return b
}

func (b *ReservationBuilder) WithSeats(seats int) *ReservationBuilder {
	b.Seats = seats
	return b
}
