package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shiftboard/internal/domain/user"
	"shiftboard/internal/handler/api"
	"shiftboard/internal/handler/middleware"
	"shiftboard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	ShiftChange  *api.ShiftChangeHandler
	Vacation     *api.VacationHandler
	Schedule     *api.ScheduleHandler
	Preference   *api.PreferenceHandler
	Notification *api.NotificationHandler
	Message      *api.MessageHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		changes := apiGroup.Group("/changes")
		changes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(changes, []route{
				{Method: http.MethodPost, Path: "", Handler: h.ShiftChange.Create},
				{Method: http.MethodGet, Path: "", Handler: h.ShiftChange.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.ShiftChange.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.ShiftChange.Cancel},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.ShiftChange.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.ShiftChange.Reject},
				{Method: http.MethodPost, Path: "/:id/offers", Handler: h.ShiftChange.SubmitOffer},
				{Method: http.MethodDelete, Path: "/:id/offers/:offerId", Handler: h.ShiftChange.WithdrawOffer},
				{Method: http.MethodPost, Path: "/:id/offers/:offerId/select", Handler: h.ShiftChange.SelectOffer},
			})
		}

		vacations := apiGroup.Group("/vacations")
		vacations.Use(authMiddleware.RequireAuth())
		{
			supervisorOnly := authMiddleware.RequireRoleAtLeast(user.RoleSupervisor)
			addRoutes(vacations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Vacation.Request},
				{Method: http.MethodGet, Path: "", Handler: h.Vacation.ListMine},
				{Method: http.MethodGet, Path: "/balance", Handler: h.Vacation.Balance},
				{Method: http.MethodGet, Path: "/pending", Handler: h.Vacation.ListPending, Mw: []gin.HandlerFunc{supervisorOnly}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Vacation.Cancel},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Vacation.Approve, Mw: []gin.HandlerFunc{supervisorOnly}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Vacation.Reject, Mw: []gin.HandlerFunc{supervisorOnly}},
			})
		}

		schedules := apiGroup.Group("/schedules")
		schedules.Use(authMiddleware.RequireAuth())
		{
			supervisorOnly := authMiddleware.RequireRoleAtLeast(user.RoleSupervisor)
			addRoutes(schedules, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Schedule.Monthly},
				{Method: http.MethodGet, Path: "/me", Handler: h.Schedule.MyEntries},
				{Method: http.MethodGet, Path: "/shift-types", Handler: h.Schedule.ShiftTypes},
				{Method: http.MethodPost, Path: "/periods", Handler: h.Schedule.CreatePeriod, Mw: []gin.HandlerFunc{supervisorOnly}},
				{Method: http.MethodPut, Path: "/periods/:id/entries", Handler: h.Schedule.UpsertEntry, Mw: []gin.HandlerFunc{supervisorOnly}},
				{Method: http.MethodPost, Path: "/periods/:id/publish", Handler: h.Schedule.PublishPeriod, Mw: []gin.HandlerFunc{supervisorOnly}},
				{Method: http.MethodPost, Path: "/periods/:id/archive", Handler: h.Schedule.ArchivePeriod, Mw: []gin.HandlerFunc{supervisorOnly}},
			})
		}

		preferences := apiGroup.Group("/preferences")
		preferences.Use(authMiddleware.RequireAuth())
		{
			addRoutes(preferences, []route{
				{Method: http.MethodPut, Path: "", Handler: h.Preference.Submit},
				{Method: http.MethodGet, Path: "", Handler: h.Preference.Mine},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
				{Method: http.MethodPost, Path: "/read-all", Handler: h.Notification.MarkAllRead},
			})
		}

		messages := apiGroup.Group("/messages")
		messages.Use(authMiddleware.RequireAuth())
		{
			addRoutes(messages, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Message.List},
				{Method: http.MethodPost, Path: "", Handler: h.Message.Send},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Message.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Message.Delete},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Message.MarkRead},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
