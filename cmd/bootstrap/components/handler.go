package components

import (
	"shiftboard/internal/handler"
	"shiftboard/internal/handler/api"
	"shiftboard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewShiftChangeHandler,
		api.NewVacationHandler,
		api.NewScheduleHandler,
		api.NewPreferenceHandler,
		api.NewNotificationHandler,
		api.NewMessageHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	shiftChange *api.ShiftChangeHandler,
	vacation *api.VacationHandler,
	schedule *api.ScheduleHandler,
	preference *api.PreferenceHandler,
	notification *api.NotificationHandler,
	message *api.MessageHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		ShiftChange:  shiftChange,
		Vacation:     vacation,
		Schedule:     schedule,
		Preference:   preference,
		Notification: notification,
		Message:      message,
	}
}
