package components

import (
	"storefront-rules/internal/handler"
	"storefront-rules/internal/handler/api"
	"storefront-rules/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPricingHandler,
		api.NewAnnouncementHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
