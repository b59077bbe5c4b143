package components

import (
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/usecase"
	"macondo-backend/internal/usecase/commands"
	"macondo-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewConflictChecker,
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewRedemptionCommands,
		commands.NewCoverCommands,
		commands.NewCoverAdminCommands,
		commands.NewStaffCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewTicketQueries,
		queries.NewCoverQueries,
		queries.NewStaffQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
