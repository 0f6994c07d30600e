package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"shiftboard/internal/domain/shiftchange"
	reqdto "shiftboard/internal/handler/dto/request"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/handler/httperr"
	"shiftboard/internal/handler/middleware"
	"shiftboard/internal/usecase/commands"
	"shiftboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShiftChangeHandler struct {
	cmds        commands.ShiftChangeCommands
	q           queries.ShiftChangeQueries
	userQueries queries.UserQueries
}

func NewShiftChangeHandler(cmds commands.ShiftChangeCommands, q queries.ShiftChangeQueries, userQueries queries.UserQueries) *ShiftChangeHandler {
	return &ShiftChangeHandler{cmds: cmds, q: q, userQueries: userQueries}
}

// @Summary Create shift change request
// @Description Open a new shift change request for one of the caller's published schedule entries
// @Tags changes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateChangeRequest true "Create change request"
// @Success 201 {object} resdto.ChangeRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /changes [post]
func (h *ShiftChangeHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromChangeRequestView(view))
}

// @Summary Get shift change request
// @Description Get a change request with its offers, approvals and result
// @Tags changes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Success 200 {object} resdto.ChangeRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /changes/{id} [get]
func (h *ShiftChangeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrChangeRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromChangeRequestView(view))
}

// @Summary List shift change requests
// @Description List change requests with status/mine/available filters and keyset pagination
// @Tags changes
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param mine query bool false "Only requests created by the caller"
// @Param available query bool false "Only open requests the caller can offer on"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /changes [get]
func (h *ShiftChangeHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	filter := queries.ListChangesFilter{
		Mine:      c.Query("mine") == "true",
		Available: c.Query("available") == "true",
		After:     c.Query("after"),
		Limit:     20,
	}
	if v := c.Query("status"); v != "" {
		if !shiftchange.Status(v).IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidFilter, "Invalid status filter", nil)
			return
		}
		filter.Status = &v
	}
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			filter.Limit = queries.ValidateLimit(iv)
		}
	}

	viewerEmployeeID := uuid.Nil
	userView, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err == nil && userView.EmployeeID != nil {
		viewerEmployeeID = *userView.EmployeeID
	}

	items, next, err := h.q.List(c.Request.Context(), viewerEmployeeID, filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	resp := gin.H{"changes": resdto.FromChangeRequestList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Submit coverage offer
// @Description Offer to take over the shift of an open change request
// @Tags changes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Param request body reqdto.SubmitOfferRequest true "Offer request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /changes/{id}/offers [post]
func (h *ShiftChangeHandler) SubmitOffer(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.SubmitOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	offerID, err := h.cmds.SubmitOffer(c.Request.Context(), requestID, req.ToInput(), actor)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"offer_id": offerID.String()})
}

// @Summary Withdraw coverage offer
// @Description Withdraw the caller's pending offer from a change request
// @Tags changes
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Param offerId path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /changes/{id}/offers/{offerId} [delete]
func (h *ShiftChangeHandler) WithdrawOffer(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	offerID, err := uuid.Parse(c.Param("offerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.WithdrawOffer(c.Request.Context(), requestID, offerID, actor); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel change request
// @Description Cancel the caller's own change request before completion
// @Tags changes
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /changes/{id}/cancel [post]
func (h *ShiftChangeHandler) Cancel(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), requestID, actor); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Select offer
// @Description Requester selects one pending offer, moving the request to approval
// @Tags changes
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Param offerId path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /changes/{id}/offers/{offerId}/select [post]
func (h *ShiftChangeHandler) SelectOffer(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	offerID, err := uuid.Parse(c.Param("offerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.SelectOffer(c.Request.Context(), requestID, offerID, actor); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Approve change request
// @Description Record the caller's approval; the request completes when all required parties approved
// @Tags changes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Param request body reqdto.DecisionRequest false "Approval notes"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /changes/{id}/approve [post]
func (h *ShiftChangeHandler) Approve(c *gin.Context) {
	h.decide(c, h.cmds.Approve)
}

// @Summary Reject change request
// @Description Reject the change; any required approver (or an admin) can veto
// @Tags changes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Param request body reqdto.DecisionRequest false "Rejection notes"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /changes/{id}/reject [post]
func (h *ShiftChangeHandler) Reject(c *gin.Context) {
	h.decide(c, h.cmds.Reject)
}

func (h *ShiftChangeHandler) decide(c *gin.Context, fn func(ctx context.Context, requestID uuid.UUID, input commands.DecisionInput, actor commands.Actor) error) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.DecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	if err := fn(c.Request.Context(), requestID, req.ToInput(), actor); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ShiftChangeHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRequestNotFound),
		errors.Is(err, commands.ErrOfferNotFound),
		errors.Is(err, commands.ErrEntryNotFound),
		errors.Is(err, commands.ErrShiftTypeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrNoEmployeeProfile):
		httperr.AbortWithError(c, http.StatusForbidden, err, "No employee profile linked to this account", nil)
	case errors.Is(err, commands.ErrNotParticipant),
		errors.Is(err, commands.ErrForbiddenApproval),
		errors.Is(err, shiftchange.ErrNotRequester):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to act on this request", nil)
	case errors.Is(err, commands.ErrActiveRequestExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "An active change request already exists for this entry", nil)
	case errors.Is(err, commands.ErrAlreadyApproved):
		httperr.AbortWithError(c, http.StatusConflict, err, "Already approved", nil)
	case errors.Is(err, commands.ErrConcurrentUpdate):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request was modified concurrently, please retry", nil)
	case errors.Is(err, commands.ErrRequestExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Change request has expired", nil)
	case errors.Is(err, shiftchange.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request is not in a state that allows this action", nil)
	case errors.Is(err, shiftchange.ErrSelfOffer),
		errors.Is(err, shiftchange.ErrDuplicateOffer),
		errors.Is(err, shiftchange.ErrOfferNotPending),
		errors.Is(err, shiftchange.ErrNotOfferer),
		errors.Is(err, shiftchange.ErrOfferMismatch):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errors.Is(err, shiftchange.ErrEntryNotOwned),
		errors.Is(err, shiftchange.ErrPeriodNotPublished),
		errors.Is(err, shiftchange.ErrSwapTargetRequired),
		errors.Is(err, shiftchange.ErrSwapTargetSame),
		errors.Is(err, shiftchange.ErrSwapTargetInactive),
		errors.Is(err, shiftchange.ErrInvalidChangeType),
		errors.Is(err, shiftchange.ErrInvalidUrgency),
		errors.Is(err, shiftchange.ErrReasonTooLong),
		errors.Is(err, shiftchange.ErrConditionsTooLong):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

var (
	errUnauthenticated = errors.New("missing authentication context")
	errInvalidFilter   = errors.New("invalid filter value")
)

func currentActor(c *gin.Context) (commands.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return commands.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return commands.Actor{}, false
	}
	return commands.Actor{UserID: userID, Role: role}, true
}
