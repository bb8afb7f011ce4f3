package components

import (
	"kantine-order-api/internal/pkg/clock"
	"kantine-order-api/internal/usecase/commands"
	"kantine-order-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomCommands,
		commands.NewProductCommands,
		commands.NewOptionCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewProductQueries,
		queries.NewOptionQueries,
		queries.NewOrderQueries,
	),
)
