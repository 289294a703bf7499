package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	reqdto "ridepool/internal/handler/dto/request"
	resdto "ridepool/internal/handler/dto/response"
	"ridepool/internal/handler/httperr"
	"ridepool/internal/pkg/errs"
	"ridepool/internal/usecase/commands"
	"ridepool/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	tripCommands commands.TripCommands
	tripQueries  queries.TripQueries
}

func NewTripHandler(tripCommands commands.TripCommands, tripQueries queries.TripQueries) *TripHandler {
	return &TripHandler{
		tripCommands: tripCommands,
		tripQueries:  tripQueries,
	}
}

// @Summary List trips
// @Description List all trips with their seat usage
// @Tags trips
// @Produce json
// @Param destination query string false "Filter trips whose route contains this text"
// @Success 200 {array} resdto.TripResponse
// @Router /trips [get]
func (h *TripHandler) ListTrips(c *gin.Context) {
	var (
		views []*queries.TripView
		err   error
	)

	if destination := c.Query("destination"); destination != "" {
		views, err = h.tripQueries.SearchByDestination(c.Request.Context(), destination)
	} else {
		views, err = h.tripQueries.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.TripResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromTripView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get trip
// @Description Get a trip with its reservations
// @Tags trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} resdto.TripDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trips/{id} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	id, err := parseTripID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid trip ID format",
		})
		return
	}

	detail, err := h.tripQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTripNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Trip not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTripDetailView(detail))
}

// @Summary Publish trip
// @Description Publish a new trip open for reservations
// @Tags trips
// @Accept json
// @Produce json
// @Param request body reqdto.PublishTripRequest true "Trip request"
// @Success 201 {object} resdto.PublishTripResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /trips [post]
func (h *TripHandler) PublishTrip(c *gin.Context) {
	var req reqdto.PublishTripRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := req.Validate(); err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		return
	}

	id, err := h.tripCommands.Publish(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTrip):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid trip",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.PublishTripResponse{ID: id})
}

// @Summary Close trip
// @Description Close an open trip to further reservations
// @Tags trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /trips/{id}/close [post]
func (h *TripHandler) CloseTrip(c *gin.Context) {
	h.transition(c, h.tripCommands.Close)
}

// @Summary Cancel trip
// @Description Cancel an open trip
// @Tags trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /trips/{id}/cancel [post]
func (h *TripHandler) CancelTrip(c *gin.Context) {
	h.transition(c, h.tripCommands.Cancel)
}

func (h *TripHandler) transition(c *gin.Context, apply func(ctx context.Context, id int64) error) {
	id, err := parseTripID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid trip ID format",
		})
		return
	}

	if err := apply(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrTripNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Trip not found",
			})
		case errors.Is(err, errs.ErrTripNotOpen):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Trip is no longer open",
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

func parseTripID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
