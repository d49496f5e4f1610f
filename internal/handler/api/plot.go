package api

import (
	"net/http"

	reqdto "campsite-booking/internal/handler/dto/request"
	resdto "campsite-booking/internal/handler/dto/response"
	"campsite-booking/internal/handler/httperr"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PlotHandler struct {
	plotCommands commands.PlotCommands
	plotQueries  queries.PlotQueries
}

func NewPlotHandler(plotCommands commands.PlotCommands, plotQueries queries.PlotQueries) *PlotHandler {
	return &PlotHandler{
		plotCommands: plotCommands,
		plotQueries:  plotQueries,
	}
}

// @Summary Create plot
// @Tags plots
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePlotRequest true "Plot request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /plots [post]
func (h *PlotHandler) CreatePlot(c *gin.Context) {
	var req reqdto.CreatePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.plotCommands.CreatePlot(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update plot
// @Tags plots
// @Accept json
// @Produce json
// @Param id path string true "Plot ID"
// @Param request body reqdto.UpdatePlotRequest true "Plot request"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /plots/{id} [put]
func (h *PlotHandler) UpdatePlot(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdatePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.plotCommands.UpdatePlot(c.Request.Context(), id, req.ToCommand()); err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete plot
// @Description Remove a plot; assignments referencing it are released as well
// @Tags plots
// @Produce json
// @Param id path string true "Plot ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /plots/{id} [delete]
func (h *PlotHandler) DeletePlot(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.plotCommands.DeletePlot(c.Request.Context(), id); err != nil {
		respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get plot
// @Tags plots
// @Produce json
// @Param id path string true "Plot ID"
// @Success 200 {object} resdto.PlotResponse
// @Failure 404 {object} httperr.Response
// @Router /plots/{id} [get]
func (h *PlotHandler) GetPlot(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.plotQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlotView(view))
}

// @Summary List plots
// @Tags plots
// @Produce json
// @Success 200 {array} resdto.PlotResponse
// @Router /plots [get]
func (h *PlotHandler) ListPlots(c *gin.Context) {
	views, err := h.plotQueries.List(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlotViews(views))
}

// @Summary List available plots
// @Description Plots with no reservation overlapping the given stay
// @Tags plots
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {array} resdto.PlotResponse
// @Failure 400 {object} httperr.Response
// @Router /plots/available [get]
func (h *PlotHandler) ListAvailablePlots(c *gin.Context) {
	checkIn, checkOut, err := reqdto.ParseStayDates(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	views, err := h.plotQueries.ListAvailable(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlotViews(views))
}
