package api

import (
	"errors"
	"net/http"

	reqdto "campsite-booking/internal/handler/dto/request"
	resdto "campsite-booking/internal/handler/dto/response"
	"campsite-booking/internal/handler/httperr"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	bookingCommands    commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(bookingCommands commands.BookingCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		bookingCommands:    bookingCommands,
		reservationQueries: reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book one or more plots for a stay; all plots are reserved atomically or none are
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		respondBookingError(c, err)
		return
	}

	result, err := h.bookingCommands.CreateReservation(c.Request.Context(), cmd)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Update reservation
// @Description Replace the guest details, stay dates and plot assignments of a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Reservation request"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		respondBookingError(c, err)
		return
	}

	result, err := h.bookingCommands.UpdateReservation(c.Request.Context(), id, cmd)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Delete reservation
// @Description Cancel a reservation and release all of its plots
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.bookingCommands.DeleteReservation(c.Request.Context(), id); err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add plot assignment
// @Description Attach another plot to an existing reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AddAssignmentRequest true "Assignment request"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/assignments [post]
func (h *ReservationHandler) AddPlotAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.AddAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		respondBookingError(c, err)
		return
	}

	result, err := h.bookingCommands.AddPlotAssignment(c.Request.Context(), id, input)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Remove plot assignment
// @Description Detach a plot from a reservation; the last plot cannot be removed
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Param plotId path string true "Plot ID"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/assignments/{plotId} [delete]
func (h *ReservationHandler) RemovePlotAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	plotID, ok := parseIDParam(c, "plotId")
	if !ok {
		return
	}

	result, err := h.bookingCommands.RemovePlotAssignment(c.Request.Context(), id, plotID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Resize plot assignment
// @Description Change the occupant count of one plot assignment and reprice the reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param plotId path string true "Plot ID"
// @Param request body reqdto.ResizeAssignmentRequest true "Resize request"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/assignments/{plotId} [patch]
func (h *ReservationHandler) ResizePlotAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	plotID, ok := parseIDParam(c, "plotId")
	if !ok {
		return
	}

	var req reqdto.ResizeAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.ResizePlotAssignment(c.Request.Context(), id, plotID, req.OccupantCount)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	items, err := h.reservationQueries.List(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListItems(items))
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func respondBookingError(c *gin.Context, err error) {
	var conflict *commands.ConflictError

	switch {
	case errors.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested plots are already booked for the stay", gin.H{
			"reservationIds": conflict.ReservationIDs,
			"plotIds":        conflict.PlotIDs,
		})
	case errors.Is(err, errs.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested plots are already booked for the stay", nil)
	case errors.Is(err, errs.ErrPlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Plot not found", nil)
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, errs.ErrAssignmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Plot assignment not found", nil)
	case errors.Is(err, errs.ErrDuplicatePlotName):
		httperr.AbortWithError(c, http.StatusConflict, err, "Plot name already exists", nil)
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
