package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campsite-booking/internal/handler/api"
	"campsite-booking/internal/handler/middleware"
	"campsite-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, reservationHandler *api.ReservationHandler, plotHandler *api.PlotHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, plotHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reservationHandler *api.ReservationHandler, plotHandler *api.PlotHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.UpdateReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.DeleteReservation},
				{Method: http.MethodPost, Path: "/:id/assignments", Handler: reservationHandler.AddPlotAssignment},
				{Method: http.MethodPatch, Path: "/:id/assignments/:plotId", Handler: reservationHandler.ResizePlotAssignment},
				{Method: http.MethodDelete, Path: "/:id/assignments/:plotId", Handler: reservationHandler.RemovePlotAssignment},
			})
		}

		plots := apiGroup.Group("/plots")
		{
			addRoutes(plots, []route{
				{Method: http.MethodPost, Path: "", Handler: plotHandler.CreatePlot},
				{Method: http.MethodGet, Path: "", Handler: plotHandler.ListPlots},
				{Method: http.MethodGet, Path: "/available", Handler: plotHandler.ListAvailablePlots},
				{Method: http.MethodGet, Path: "/:id", Handler: plotHandler.GetPlot},
				{Method: http.MethodPut, Path: "/:id", Handler: plotHandler.UpdatePlot},
				{Method: http.MethodDelete, Path: "/:id", Handler: plotHandler.DeletePlot},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
