package components

import (
	"ridepool/internal/handler"
	"ridepool/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTripHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
