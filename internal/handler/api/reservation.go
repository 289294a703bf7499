package api

import (
	"errors"
	"net/http"

	reqdto "ridepool/internal/handler/dto/request"
	resdto "ridepool/internal/handler/dto/response"
	"ridepool/internal/pkg/errs"
	"ridepool/internal/usecase/commands"
	"ridepool/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	bookingCommands    commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(
	bookingCommands commands.BookingCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		bookingCommands:    bookingCommands,
		reservationQueries: reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book seats on a trip; closes the trip when the last seat is taken
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Trip ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /trips/{id}/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	tripID, err := parseTripID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid trip ID format",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateReservation(c.Request.Context(), tripID, req.User, req.Seats)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTripNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Trip not found",
			})
		case errors.Is(err, errs.ErrSelfBooking):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Trip owners cannot book their own trips",
			})
		case errors.Is(err, errs.ErrTripNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Trip is not open for reservations",
			})
		case errors.Is(err, errs.ErrInvalidSeatCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Seat count must be at least 1",
			})
		case errors.Is(err, errs.ErrInsufficientSeats):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Not enough seats left",
			})
		case errors.Is(err, errs.ErrDuplicateReservation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "User already holds a reservation on this trip",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{
		Code:       result.Code,
		TripClosed: result.TripClosed,
	})
}

// @Summary Cancel reservation
// @Description Cancel a reservation by code; a full trip stays closed
// @Tags reservations
// @Produce json
// @Param code path string true "Reservation code"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /reservations/{code} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	code := c.Param("code")

	if err := h.bookingCommands.CancelReservation(c.Request.Context(), code); err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get reservation
// @Description Get a reservation by code
// @Tags reservations
// @Produce json
// @Param code path string true "Reservation code"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{code} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	code := c.Param("code")

	view, err := h.reservationQueries.GetByCode(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Get user reservations
// @Description List all reservations held by a user
// @Tags reservations
// @Produce json
// @Param user query string true "Username"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'user' is required",
		})
		return
	}

	items, err := h.reservationQueries.ListByUser(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}

	c.JSON(http.StatusOK, response)
}
