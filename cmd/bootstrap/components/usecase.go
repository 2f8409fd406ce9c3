package components

import (
	"marketplace-core/internal/infra/paymentgw"
	"marketplace-core/internal/pkg/clock"
	"marketplace-core/internal/pkg/config"
	"marketplace-core/internal/usecase"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/queries"
	"marketplace-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.Policies {
		return commands.NewPolicies(cfg.Market)
	},
	func(cfg config.Config) shared.PaymentGateway {
		return paymentgw.NewOfflineGateway(cfg.Market.PaymentProvider)
	},
	commands.NewRunner,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewListingUseCase,
		commands.NewReservationUseCase,
		commands.NewOrderUseCase,
		commands.NewPaymentUseCase,
		commands.NewDisputeUseCase,
		commands.NewReviewUseCase,
		commands.NewUserUseCase,
		// reads reconcile through the write side before rendering
		func(c commands.ListingCommands) queries.AvailabilityRefresher { return c },
		func(c commands.OrderCommands) queries.OrderReconciler { return c },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewListingQueries,
		queries.NewOrderQueries,
		queries.NewReviewQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
