//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"campsite-booking/internal/handler/api"
	reqdto "campsite-booking/internal/handler/dto/request"
	resdto "campsite-booking/internal/handler/dto/response"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"
	"campsite-booking/tests/common/httptest"
	"campsite-booking/tests/common/testutil"
	commandsmock "campsite-booking/tests/mock/commands"
	queriesmock "campsite-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations", s.handler.ListReservations)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.PUT("/reservations/:id", s.handler.UpdateReservation)
	s.router.DELETE("/reservations/:id", s.handler.DeleteReservation)
	s.router.POST("/reservations/:id/assignments", s.handler.AddPlotAssignment)
	s.router.PATCH("/reservations/:id/assignments/:plotId", s.handler.ResizePlotAssignment)
	s.router.DELETE("/reservations/:id/assignments/:plotId", s.handler.RemovePlotAssignment)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) validCreateBody(muts ...func(map[string]any)) map[string]any {
	req := reqdto.CreateReservationRequest{
		CustomerName:  "John Smith",
		CustomerPhone: "600123456",
		CheckIn:       "2026-07-10",
		CheckOut:      "2026-07-12",
		Assignments: []reqdto.AssignmentRequest{
			{PlotID: uuid.New().String(), OccupantCount: 2},
		},
	}
	return testutil.DtoMap(s.T(), req, muts...)
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	s.Run("returns 201 with booking result", func() {
		result := &commands.BookingResult{ReservationID: uuid.New(), TotalPriceCents: 6000}
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any()).
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", s.validCreateBody())

		var resp resdto.BookingResultResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(result.ReservationID, resp.ReservationID)
		s.Equal(int64(6000), resp.TotalPriceCents)
	})

	s.Run("returns 400 on malformed body", func() {
		body := s.validCreateBody(
			testutil.Field("customer_phone", nil),
			testutil.Field("assignments", nil),
		)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", body)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("returns 400 on unparseable date", func() {
		body := s.validCreateBody(testutil.Field("check_in", "10/07/2026"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", body)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
	})

	s.Run("returns 409 with conflict detail", func() {
		conflictReservation := uuid.New()
		conflictPlot := uuid.New()
		conflictErr := errs.Mark(&commands.ConflictError{
			ReservationIDs: []uuid.UUID{conflictReservation},
			PlotIDs:        []uuid.UUID{conflictPlot},
		}, errs.ErrBookingConflict)

		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, conflictErr)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", s.validCreateBody())

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already booked")
	})

	s.Run("returns 404 on unknown plot", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrPlotNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", s.validCreateBody())

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Plot not found")
	})

	s.Run("returns 500 on persistence failure", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("db down"), errs.ErrPersistence))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", s.validCreateBody())

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	s.Run("returns 200 with repriced result", func() {
		id := uuid.New()
		result := &commands.BookingResult{ReservationID: id, TotalPriceCents: 9000}
		s.mockCommands.EXPECT().
			UpdateReservation(gomock.Any(), id, gomock.Any()).
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/"+id.String(), s.validCreateBody())

		var resp resdto.BookingResultResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(9000), resp.TotalPriceCents)
	})

	s.Run("returns 404 when reservation is missing", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			UpdateReservation(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrReservationNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/"+id.String(), s.validCreateBody())

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("returns 400 on invalid id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/not-a-uuid", s.validCreateBody())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReservationHandlerTestSuite) TestDeleteReservation() {
	s.Run("returns 204 even when already gone", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			DeleteReservation(gomock.Any(), id).
			Return(int64(0), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil)

		s.Equal(http.StatusNoContent, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestAssignmentEndpoints() {
	s.Run("add returns 200", func() {
		id := uuid.New()
		plotID := uuid.New()
		result := &commands.BookingResult{ReservationID: id, TotalPriceCents: 12000}
		s.mockCommands.EXPECT().
			AddPlotAssignment(gomock.Any(), id, gomock.Any()).
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/assignments", map[string]any{
			"plot_id":        plotID.String(),
			"occupant_count": 2,
		})

		var resp resdto.BookingResultResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(12000), resp.TotalPriceCents)
	})

	s.Run("resize returns 200", func() {
		id := uuid.New()
		plotID := uuid.New()
		result := &commands.BookingResult{ReservationID: id, TotalPriceCents: 4500}
		s.mockCommands.EXPECT().
			ResizePlotAssignment(gomock.Any(), id, plotID, 3).
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/reservations/"+id.String()+"/assignments/"+plotID.String(), map[string]any{
				"occupant_count": 3,
			})

		var resp resdto.BookingResultResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("remove last assignment returns 400", func() {
		id := uuid.New()
		plotID := uuid.New()
		s.mockCommands.EXPECT().
			RemovePlotAssignment(gomock.Any(), id, plotID).
			Return(nil, errs.Mark(errs.New("at least one plot"), errs.ErrValidation))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/reservations/"+id.String()+"/assignments/"+plotID.String(), nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
	})

	s.Run("resize unknown assignment returns 404", func() {
		id := uuid.New()
		plotID := uuid.New()
		s.mockCommands.EXPECT().
			ResizePlotAssignment(gomock.Any(), id, plotID, 2).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrAssignmentNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/reservations/"+id.String()+"/assignments/"+plotID.String(), map[string]any{
				"occupant_count": 2,
			})

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Plot assignment not found")
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("returns view with assignments", func() {
		id := uuid.New()
		view := &queries.ReservationView{
			ID:              id,
			CustomerName:    "John Smith",
			CustomerPhone:   "600123456",
			CheckIn:         time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:        time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
			TotalPriceCents: 6000,
			Assignments: []queries.AssignmentLine{
				{PlotID: uuid.New(), PlotName: "Riverside", OccupantCount: 2, PricePerPersonCents: 1500},
			},
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil)

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("2026-07-10", resp.CheckIn)
		s.Equal("2026-07-12", resp.CheckOut)
		s.Len(resp.Assignments, 1)
	})

	s.Run("returns 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrReservationNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})
}
