package components

import (
	"shiftboard/internal/pkg/clock"
	"shiftboard/internal/pkg/config"
	"shiftboard/internal/usecase"
	"shiftboard/internal/usecase/commands"
	"shiftboard/internal/usecase/queries"

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
	func(cfg config.Config) config.ShiftConfig {
		return cfg.Shift
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewShiftChangeUseCase,
		commands.NewVacationUseCase,
		commands.NewScheduleUseCase,
		commands.NewPreferenceUseCase,
		commands.NewNotificationUseCase,
		commands.NewMessageUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewShiftChangeQueries,
		queries.NewScheduleQueries,
		queries.NewVacationQueries,
		queries.NewPreferenceQueries,
		queries.NewNotificationQueries,
		queries.NewMessageQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
