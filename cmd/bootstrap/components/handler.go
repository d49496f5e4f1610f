package components

import (
	"campsite-booking/internal/handler"
	"campsite-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewPlotHandler,
	),
	fx.Invoke(handler.NewRouter),
)
