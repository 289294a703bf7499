package request

import (
	"errors"
	"strings"
	"time"

	"ridepool/internal/pkg/validate"
	"ridepool/internal/usecase/commands"
)

type PublishTripRequest struct {
	Owner       string    `json:"owner" binding:"required"`
	Route       string    `json:"route" binding:"required"`
	DepartureAt time.Time `json:"departure_at" binding:"required"`
	DurationMin int       `json:"duration_min" binding:"required"`
	PriceCents  int64     `json:"price_cents" binding:"required"`
	Seats       int       `json:"seats" binding:"required"`
}

var (
	errInvalidOwner    = errors.New("owner must be two capitalized names")
	errInvalidRoute    = errors.New("route must follow the 'Origin - Destination' format")
	errInvalidSeats    = errors.New("seats must be at least 1")
	errInvalidPrice    = errors.New("price must be positive")
	errInvalidDuration = errors.New("duration must be positive")
)

func (r PublishTripRequest) Validate() error {
	if !validate.OwnerName(strings.TrimSpace(r.Owner)) {
		return errInvalidOwner
	}
	if !validate.Route(strings.TrimSpace(r.Route)) {
		return errInvalidRoute
	}
	if !validate.Seats(r.Seats) {
		return errInvalidSeats
	}
	if !validate.PriceCents(r.PriceCents) {
		return errInvalidPrice
	}
	if !validate.DurationMinutes(r.DurationMin) {
		return errInvalidDuration
	}
	return nil
}

func (r PublishTripRequest) ToInput() commands.PublishTripInput {
	return commands.PublishTripInput{
		Owner:       strings.TrimSpace(r.Owner),
		Route:       strings.TrimSpace(r.Route),
		DepartureAt: r.DepartureAt,
		DurationMin: r.DurationMin,
		PriceCents:  r.PriceCents,
		Seats:       r.Seats,
	}
}
