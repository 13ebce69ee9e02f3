package components

import (
	"weekchain-capacity/internal/pkg/clock"
	"weekchain-capacity/internal/pkg/config"
	"weekchain-capacity/internal/usecase"
	"weekchain-capacity/internal/usecase/commands"
	"weekchain-capacity/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) queries.GateMode {
		return queries.GateMode(cfg.Engine.GateMode)
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCapacityQueries,
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewCertificateQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCapacityCommands,
		commands.NewSalesCommands,
		commands.NewCertificateCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
