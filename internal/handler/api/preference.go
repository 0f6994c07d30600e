package api

import (
	"errors"
	"net/http"

	reqdto "shiftboard/internal/handler/dto/request"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/handler/middleware"
	"shiftboard/internal/usecase/commands"
	"shiftboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PreferenceHandler struct {
	cmds        commands.PreferenceCommands
	q           queries.PreferenceQueries
	userQueries queries.UserQueries
}

func NewPreferenceHandler(cmds commands.PreferenceCommands, q queries.PreferenceQueries, userQueries queries.UserQueries) *PreferenceHandler {
	return &PreferenceHandler{cmds: cmds, q: q, userQueries: userQueries}
}

// @Summary Submit shift preferences
// @Description Replace the caller's preference sheet for an open collection period
// @Tags preferences
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SubmitPreferencesRequest true "Preference sheet"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /preferences [put]
func (h *PreferenceHandler) Submit(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.SubmitPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	if err := h.cmds.Submit(c.Request.Context(), input, actor); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get my shift preferences
// @Description Get the caller's submitted preference sheet for a month
// @Tags preferences
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month"
// @Success 200 {object} resdto.PreferencePeriodResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /preferences [get]
func (h *PreferenceHandler) Mine(c *gin.Context) {
	employeeID, ok := h.currentEmployeeID(c)
	if !ok {
		return
	}
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}

	view, err := h.q.MyPreferences(c.Request.Context(), employeeID, year, month)
	if err != nil {
		if errors.Is(err, queries.ErrPreferencePeriodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No preference period for this month"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPreferencePeriodView(view))
}

func (h *PreferenceHandler) currentEmployeeID(c *gin.Context) (uuid.UUID, bool) {
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

func (h *PreferenceHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrNoEmployeeProfile):
		c.JSON(http.StatusForbidden, gin.H{"error": "No employee profile linked to this account"})
	case errors.Is(err, commands.ErrPreferencePeriodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No preference period for this month"})
	case errors.Is(err, commands.ErrPreferencePeriodClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "Preference period is closed"})
	case errors.Is(err, commands.ErrPreferenceOutOfPeriod),
		errors.Is(err, commands.ErrPreferenceConflict):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
