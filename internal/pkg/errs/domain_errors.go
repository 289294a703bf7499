package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Trip errors
	ErrTripNotFound     = errors.New("trip not found")
	ErrTripNotAvailable = errors.New("trip not available for booking")
	ErrTripNotOpen      = errors.New("trip is not open")
	ErrInvalidTrip      = errors.New("invalid trip")

	// Reservation errors
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrSelfBooking          = errors.New("owner cannot book own trip")
	ErrInsufficientSeats    = errors.New("not enough seats available")
	ErrDuplicateReservation = errors.New("user already has a reservation on this trip")
	ErrInvalidSeatCount     = errors.New("requested seat count must be positive")

	// Persistence errors
	ErrStoreFailure = errors.New("store operation failed")
)
