//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ridepool/internal/handler/api"
	resdto "ridepool/internal/handler/dto/response"
	"ridepool/internal/pkg/errs"
	"ridepool/internal/usecase/commands"
	"ridepool/internal/usecase/queries"
	"ridepool/tests/common/builder"
	"ridepool/tests/common/httptest"
	"ridepool/tests/common/testutil"
	commandsmock "ridepool/tests/mock/commands"
	queriesmock "ridepool/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Setup routes
	s.router.POST("/trips/:id/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations", s.handler.GetUserReservations)
	s.router.GET("/reservations/:code", s.handler.GetReservation)
	s.router.DELETE("/reservations/:code", s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/trips/1/reservations"
	reqBody := map[string]any{"user": "Ada Lovelace", "seats": 2}

	s.Run("success: returns 201 Created with the assigned code", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), int64(1), "Ada Lovelace", 2).
			Return(&commands.CreateReservationResult{Code: "1-1", TripClosed: false}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("1-1", body.Code)
		s.False(body.TripClosed)
	})

	s.Run("success: reports when the last seat closed the trip", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), int64(1), "Ada Lovelace", 2).
			Return(&commands.CreateReservationResult{Code: "1-3", TripClosed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.TripClosed)
	})

	s.Run("error: 400 Bad Request on malformed trip id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/trips/abc/reservations", reqBody)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request on missing user", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("user", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: engine errors map to status codes", func() {
		cases := []struct {
			name       string
			engineErr  error
			expectCode int
		}{
			{name: "trip not found", engineErr: errs.ErrTripNotFound, expectCode: http.StatusNotFound},
			{name: "self booking", engineErr: errs.ErrSelfBooking, expectCode: http.StatusForbidden},
			{name: "trip not available", engineErr: errs.ErrTripNotAvailable, expectCode: http.StatusConflict},
			{name: "invalid seat count", engineErr: errs.ErrInvalidSeatCount, expectCode: http.StatusBadRequest},
			{name: "insufficient seats", engineErr: errs.ErrInsufficientSeats, expectCode: http.StatusConflict},
			{name: "duplicate reservation", engineErr: errs.ErrDuplicateReservation, expectCode: http.StatusConflict},
			{name: "store failure", engineErr: errs.ErrStoreFailure, expectCode: http.StatusInternalServerError},
		}

		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockCommands.EXPECT().
					CreateReservation(gomock.Any(), int64(1), "Ada Lovelace", 2).
					Return(nil, c.engineErr)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				s.Equal(c.expectCode, rec.Code, "unexpected status for %s", c.name)
			})
		}
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), "1-1").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/1-1", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown code", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), "9-9").Return(errs.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/9-9", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), "1-1").Return(errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/1-1", nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("success: returns the reservation view", func() {
		view := builder.NewReservationBuilder().BuildReadModel()
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "1-1").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/1-1", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Code, body.Code)
		s.Equal(view.User, body.User)
		s.Equal(view.Seats, body.Seats)
	})

	s.Run("error: 404 Not Found for unknown code", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "9-9").Return(nil, errs.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/9-9", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestGetUserReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	s.Run("success: lists the user's reservations", func() {
		items := []*queries.ReservationListItem{
			builder.NewReservationBuilder().BuildListItem(),
			builder.NewReservationBuilder().WithTripID(3).BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "Ada Lovelace").Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?user=Ada+Lovelace", nil)

		var body []*resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(items[0].Code, body[0].Code)
	})

	s.Run("error: 400 Bad Request without user parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
