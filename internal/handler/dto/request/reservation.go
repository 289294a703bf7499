package request

// Seats carries no binding rule on purpose. Seat count validation belongs to
// the booking engine so the admission checks keep their order; a malformed
// count on a missing trip still reports the missing trip.
type CreateReservationRequest struct {
	User  string `json:"user" binding:"required"`
	Seats int    `json:"seats"`
}
