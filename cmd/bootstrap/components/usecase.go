package components

import (
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/config"
	"innkeeper/internal/usecase"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"

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
	func(cfg config.Config) reservation.Tariff {
		return reservation.NewTariff(cfg.Pricing)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRoomCommands,
		commands.NewGuestCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewGuestQueries,
		queries.NewReservationQueries,
		queries.NewReportQueries,
		queries.NewStaffQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
