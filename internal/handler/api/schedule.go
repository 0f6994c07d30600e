package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "shiftboard/internal/handler/dto/request"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/handler/middleware"
	"shiftboard/internal/usecase/commands"
	"shiftboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	cmds        commands.ScheduleCommands
	q           queries.ScheduleQueries
	userQueries queries.UserQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries, userQueries queries.UserQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q, userQueries: userQueries}
}

// @Summary Get monthly schedule
// @Description Get the schedule grid for a month; drafts are only visible to supervisors and admins
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month"
// @Success 200 {object} resdto.SchedulePeriodResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules [get]
func (h *ScheduleHandler) Monthly(c *gin.Context) {
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.MonthlySchedule(c.Request.Context(), year, month, role.CanApproveChanges())
	if err != nil {
		if errors.Is(err, queries.ErrSchedulePeriodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found for this month"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSchedulePeriodView(view))
}

// @Summary Get my schedule entries
// @Description Get the caller's schedule entries within a date range
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.ScheduleEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /schedules/me [get]
func (h *ScheduleHandler) MyEntries(c *gin.Context) {
	employeeID, ok := h.currentEmployeeID(c)
	if !ok {
		return
	}
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
		return
	}

	items, err := h.q.MyEntries(c.Request.Context(), employeeID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": resdto.FromScheduleEntryList(items)})
}

// @Summary List shift types
// @Description List all shift types
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ShiftTypeResponse
// @Router /schedules/shift-types [get]
func (h *ScheduleHandler) ShiftTypes(c *gin.Context) {
	items, err := h.q.ShiftTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shift_types": resdto.FromShiftTypeList(items)})
}

// @Summary Create schedule period
// @Description Create a draft schedule period for a month
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePeriodRequest true "Period request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules/periods [post]
func (h *ScheduleHandler) CreatePeriod(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.cmds.CreatePeriod(c.Request.Context(), req.Year, req.Month, actor)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"period_id": id.String()})
}

// @Summary Upsert schedule entry
// @Description Create or replace one employee-day assignment in a draft period
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Period ID"
// @Param request body reqdto.UpsertEntryRequest true "Entry request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules/periods/{id}/entries [put]
func (h *ScheduleHandler) UpsertEntry(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	periodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period ID format"})
		return
	}
	var req reqdto.UpsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	input, err := req.ToInput(periodID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	entryID, err := h.cmds.UpsertEntry(c.Request.Context(), input, actor)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry_id": entryID.String()})
}

// @Summary Publish schedule period
// @Description Publish a draft period, making it visible to all employees
// @Tags schedules
// @Security BearerAuth
// @Param id path string true "Period ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules/periods/{id}/publish [post]
func (h *ScheduleHandler) PublishPeriod(c *gin.Context) {
	h.transitionPeriod(c, h.cmds.PublishPeriod)
}

// @Summary Archive schedule period
// @Description Archive a published period
// @Tags schedules
// @Security BearerAuth
// @Param id path string true "Period ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules/periods/{id}/archive [post]
func (h *ScheduleHandler) ArchivePeriod(c *gin.Context) {
	h.transitionPeriod(c, h.cmds.ArchivePeriod)
}

func (h *ScheduleHandler) transitionPeriod(c *gin.Context, fn func(ctx context.Context, periodID uuid.UUID, actor commands.Actor) error) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	periodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period ID format"})
		return
	}
	if err := fn(c.Request.Context(), periodID, actor); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) currentEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}
	userView, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, false
	}
	if userView.EmployeeID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No employee profile linked to this account"})
		return uuid.Nil, false
	}
	return *userView.EmployeeID, true
}

func (h *ScheduleHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrForbiddenAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
	case errors.Is(err, commands.ErrPeriodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule period not found"})
	case errors.Is(err, commands.ErrPeriodExists):
		c.JSON(http.StatusConflict, gin.H{"error": "A period already exists for this month"})
	case errors.Is(err, commands.ErrPeriodNotDraft),
		errors.Is(err, commands.ErrPeriodArchived),
		errors.Is(err, commands.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, gin.H{"error": "Period is not in a state that allows this action"})
	case errors.Is(err, commands.ErrEntryOutOfRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Entry date is outside the period's month"})
	case errors.Is(err, commands.ErrShiftTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift type not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func yearMonthQuery(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return 0, 0, false
	}
	return year, month, true
}
