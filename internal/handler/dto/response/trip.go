package response

import (
	"time"

	"ridepool/internal/usecase/queries"
)

type TripResponse struct {
	ID              int64     `json:"id"`
	Owner           string    `json:"owner"`
	Route           string    `json:"route"`
	DepartureAt     time.Time `json:"departureAt"`
	DurationMin     int       `json:"durationMin"`
	PriceCents      int64     `json:"priceCents"`
	SeatsOffered    int       `json:"seatsOffered"`
	SeatsReserved   int       `json:"seatsReserved"`
	Status          string    `json:"status"`
	HasReservations bool      `json:"hasReservations"`
}

type TripDetailResponse struct {
	Trip         *TripResponse              `json:"trip"`
	Reservations []*ReservationListResponse `json:"reservations"`
}

type PublishTripResponse struct {
	ID int64 `json:"id"`
}

func FromTripView(v *queries.TripView) *TripResponse {
	return &TripResponse{
		ID:              v.ID,
		Owner:           v.Owner,
		Route:           v.Route,
		DepartureAt:     v.DepartureAt,
		DurationMin:     v.DurationMin,
		PriceCents:      v.PriceCents,
		SeatsOffered:    v.SeatsOffered,
		SeatsReserved:   v.SeatsReserved,
		Status:          v.Status,
		HasReservations: v.HasReservations,
	}
}

func FromTripDetailView(v *queries.TripDetailView) *TripDetailResponse {
	reservations := make([]*ReservationListResponse, len(v.Reservations))
	for i, item := range v.Reservations {
		reservations[i] = FromReservationListItem(item)
	}
	return &TripDetailResponse{
		Trip:         FromTripView(v.Trip),
		Reservations: reservations,
	}
}
