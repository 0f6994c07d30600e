package components

import (
	"shiftboard/internal/infra/db"
	"shiftboard/internal/infra/notify"
	"shiftboard/internal/infra/readstore"
	"shiftboard/internal/infra/uow"
	"shiftboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		notify.NewDBNotifier,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewShiftChangeReadStore,
			fx.As(new(queries.ShiftChangeReadStore)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		fx.Annotate(
			readstore.NewVacationReadStore,
			fx.As(new(queries.VacationReadStore)),
		),
		fx.Annotate(
			readstore.NewPreferenceReadStore,
			fx.As(new(queries.PreferenceReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewMessageReadStore,
			fx.As(new(queries.MessageReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
