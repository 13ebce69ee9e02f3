package components

import (
	"weekchain-capacity/internal/handler"
	"weekchain-capacity/internal/handler/api"
	"weekchain-capacity/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCapacityHandler,
		api.NewCatalogHandler,
		api.NewAvailabilityHandler,
		api.NewCertificateHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
