//go:build unit || e2e

package builder

import (
	"time"

	"ridepool/internal/domain/trip"
	"ridepool/internal/usecase/queries"
)

type TripBuilder struct {
	ID           int64
	Owner        string
	Route        string
	DepartureAt  time.Time
	DurationMin  int
	PriceCents   int64
	SeatsOffered int
	Status       string
}

func NewTripBuilder() *TripBuilder {
	return &TripBuilder{
		ID:           1,
		Owner:        "Grace Hopper",
		Route:        "Madrid - Valencia",
		DepartureAt:  time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC),
		DurationMin:  210,
		PriceCents:   2450,
		SeatsOffered: 4,
		Status:       "open",
	}
}

func (b *TripBuilder) With(mutate func(*TripBuilder)) *TripBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TripBuilder) BuildDomain() (*trip.Trip, error) {
	route, err := trip.NewRoute(b.Route)
	if err != nil {
		return nil, err
	}

	status, err := trip.ParseStatus(b.Status)
	if err != nil {
		return nil, err
	}

	return trip.ReconstructTrip(
		b.ID,
		b.Owner,
		route,
		b.DepartureAt,
		b.DurationMin,
		trip.NewMoney(b.PriceCents),
		b.SeatsOffered,
		status,
	), nil
}

func (b *TripBuilder) BuildReadModel() *queries.TripView {
	return &queries.TripView{
		ID:           b.ID,
		Owner:        b.Owner,
		Route:        b.Route,
		DepartureAt:  b.DepartureAt,
		DurationMin:  b.DurationMin,
		PriceCents:   b.PriceCents,
		SeatsOffered: b.SeatsOffered,
		Status:       b.Status,
	}
}

// Fluent builder methods
func (b *TripBuilder) WithID(id int64) *TripBuilder {
	b.ID = id
	return b
}

func (b *TripBuilder) WithOwner(owner string) *TripBuilder {
	b.Owner = owner
	return b
}

func (b *TripBuilder) WithRoute(route string) *TripBuilder {
	b.Route = route
	return b
}

func (b *TripBuilder) WithSeats(seats int) *TripBuilder {
	b.SeatsOffered = seats
	return b
}

func (b *TripBuilder) AsClosed() *TripBuilder {
	b.Status = "closed"
	return b
}

func (b *TripBuilder) AsCancelled() *TripBuilder {
	b.Status = "cancelled"
	return b
}
