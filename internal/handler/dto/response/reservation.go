package response

import (
	"time"

	"ridepool/internal/usecase/queries"
)

type ReservationResponse struct {
	Code      string    `json:"code"`
	User      string    `json:"user"`
	Seats     int       `json:"seats"`
	TripID    int64     `json:"tripId"`
	TripRoute string    `json:"tripRoute"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReservationListResponse struct {
	Code      string    `json:"code"`
	User      string    `json:"user"`
	Seats     int       `json:"seats"`
	TripID    int64     `json:"tripId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateReservationResponse struct {
	Code       string `json:"code"`
	TripClosed bool   `json:"tripClosed"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		Code:      v.Code,
		User:      v.User,
		Seats:     v.Seats,
		TripID:    v.TripID,
		TripRoute: v.TripRoute,
		CreatedAt: v.CreatedAt,
	}
}

func FromReservationListItem(v *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		Code:      v.Code,
		User:      v.User,
		Seats:     v.Seats,
		TripID:    v.TripID,
		CreatedAt: v.CreatedAt,
	}
}
