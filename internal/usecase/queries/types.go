package queries

import (
	"time"
)

// Read models (DTO for read side)
type TripView struct {
	ID              int64     `json:"id"`
	Owner           string    `json:"owner"`
	Route           string    `json:"route"`
	DepartureAt     time.Time `json:"departure_at"`
	DurationMin     int       `json:"duration_min"`
	PriceCents      int64     `json:"price_cents"`
	SeatsOffered    int       `json:"seats_offered"`
	SeatsReserved   int       `json:"seats_reserved"`
	Status          string    `json:"status"`
	HasReservations bool      `json:"has_reservations"`
}

type TripDetailView struct {
	Trip         *TripView              `json:"trip"`
	Reservations []*ReservationListItem `json:"reservations"`
}

type ReservationView struct {
	Code      string    `json:"code"`
	User      string    `json:"user"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"created_at"`
	TripID    int64     `json:"trip_id"`
	TripRoute string    `json:"trip_route"`
}

type ReservationListItem struct {
	Code      string    `json:"code"`
	User      string    `json:"user"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"created_at"`
	TripID    int64     `json:"trip_id"`
}
