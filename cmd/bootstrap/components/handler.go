package components

import (
	"kantine-order-api/internal/handler"
	"kantine-order-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewProductHandler,
		api.NewOptionHandler,
		api.NewOrderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
