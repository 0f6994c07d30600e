package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"shiftboard/internal/domain/vacation"
	reqdto "shiftboard/internal/handler/dto/request"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/handler/middleware"
	"shiftboard/internal/usecase/commands"
	"shiftboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VacationHandler struct {
	cmds        commands.VacationCommands
	q           queries.VacationQueries
	userQueries queries.UserQueries
}

func NewVacationHandler(cmds commands.VacationCommands, q queries.VacationQueries, userQueries queries.UserQueries) *VacationHandler {
	return &VacationHandler{cmds: cmds, q: q, userQueries: userQueries}
}

// @Summary Request vacation
// @Description Submit a vacation request; business days are reserved against the yearly balance
// @Tags vacations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RequestVacationRequest true "Vacation request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vacations [post]
func (h *VacationHandler) Request(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.RequestVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	id, err := h.cmds.Request(c.Request.Context(), input, actor)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request_id": id.String()})
}

// @Summary List my vacation requests
// @Description List the caller's vacation requests, newest first
// @Tags vacations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VacationRequestResponse
// @Failure 401 {object} map[string]string
// @Router /vacations [get]
func (h *VacationHandler) ListMine(c *gin.Context) {
	employeeID, ok := h.currentEmployeeID(c)
	if !ok {
		return
	}
	items, err := h.q.MyRequests(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": resdto.FromVacationList(items)})
}

// @Summary List pending vacation requests
// @Description List all pending vacation requests awaiting an admin decision
// @Tags vacations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VacationRequestResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /vacations/pending [get]
func (h *VacationHandler) ListPending(c *gin.Context) {
	items, err := h.q.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": resdto.FromVacationList(items)})
}

// @Summary Get my vacation balance
// @Description Get the caller's vacation balance for a year (defaults to the current year)
// @Tags vacations
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year"
// @Success 200 {object} resdto.VacationBalanceResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vacations/balance [get]
func (h *VacationHandler) Balance(c *gin.Context) {
	employeeID, ok := h.currentEmployeeID(c)
	if !ok {
		return
	}
	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = iv
	}

	balance, err := h.q.MyBalance(c.Request.Context(), employeeID, year)
	if err != nil {
		if errors.Is(err, queries.ErrBalanceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No vacation balance for this year"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromVacationBalance(balance))
}

// @Summary Cancel vacation request
// @Description Cancel the caller's own pending vacation request
// @Tags vacations
// @Security BearerAuth
// @Param id path string true "Vacation request ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vacations/{id}/cancel [post]
func (h *VacationHandler) Cancel(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vacation request ID format"})
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id, actor); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Approve vacation request
// @Description Approve a pending vacation request; pending days become used days
// @Tags vacations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Vacation request ID"
// @Param request body reqdto.VacationDecisionRequest false "Decision notes"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vacations/{id}/approve [post]
func (h *VacationHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// @Summary Reject vacation request
// @Description Reject a pending vacation request; pending days return to the balance
// @Tags vacations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Vacation request ID"
// @Param request body reqdto.VacationDecisionRequest false "Decision notes"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vacations/{id}/reject [post]
func (h *VacationHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *VacationHandler) decide(c *gin.Context, approve bool) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vacation request ID format"})
		return
	}

	var req reqdto.VacationDecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	if err := h.cmds.Decide(c.Request.Context(), id, approve, req.Notes, actor); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VacationHandler) currentEmployeeID(c *gin.Context) (uuid.UUID, bool) {
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

func (h *VacationHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVacationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Vacation request not found"})
	case errors.Is(err, commands.ErrNoEmployeeProfile):
		c.JSON(http.StatusForbidden, gin.H{"error": "No employee profile linked to this account"})
	case errors.Is(err, commands.ErrForbiddenDecision):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to decide vacation requests"})
	case errors.Is(err, vacation.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to act on this request"})
	case errors.Is(err, vacation.ErrNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": "Request is no longer pending"})
	case errors.Is(err, vacation.ErrInsufficientBalance):
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient vacation balance"})
	case errors.Is(err, vacation.ErrInvalidDateRange),
		errors.Is(err, vacation.ErrNoBusinessDays):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
