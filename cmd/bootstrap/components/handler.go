package components

import (
	"marketplace-core/internal/handler"
	"marketplace-core/internal/handler/api"
	"marketplace-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewListingHandler,
		api.NewReservationHandler,
		api.NewOrderHandler,
		api.NewDisputeHandler,
		api.NewReviewHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
