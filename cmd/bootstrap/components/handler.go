package components

import (
	"happy-hotel/internal/handler"
	"happy-hotel/internal/handler/api"

	"go.uber.org/fx"
)

// HandlerModule mounts the booking routes. The quote endpoint takes its
// foreign currency label from the converter provided by UseCaseModule.
var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
