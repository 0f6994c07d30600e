package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "shiftboard/internal/handler/dto/request"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/usecase/commands"
	"shiftboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	cmds commands.MessageCommands
	q    queries.MessageQueries
}

func NewMessageHandler(cmds commands.MessageCommands, q queries.MessageQueries) *MessageHandler {
	return &MessageHandler{cmds: cmds, q: q}
}

// @Summary List messages
// @Description List the caller's messages, newest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param box query string false "inbox, sent or all (default all)"
// @Param limit query int false "Max items (default 50)"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	box := queries.ParseMessageBox(c.Query("box"))
	limit := 50
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = queries.ValidateLimit(iv)
		}
	}

	items, err := h.q.ListByUser(c.Request.Context(), actor.UserID, box, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	unread, err := h.q.UnreadCount(c.Request.Context(), actor.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":     resdto.FromMessageList(items),
		"unread_count": unread,
	})
}

// @Summary Get message
// @Description Fetch one message; opening it as the recipient marks it read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages/{id} [get]
func (h *MessageHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID format"})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actor.UserID)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	if view.RecipientID == actor.UserID && view.ReadAt == nil {
		if err := h.cmds.MarkRead(c.Request.Context(), id, actor); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, resdto.FromMessageView(view))
}

// @Summary Send message
// @Description Send a direct message to another user
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.SendMessageRequest true "Message"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.cmds.Send(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message_id": id.String()})
}

// @Summary Mark message read
// @Description Mark one of the caller's received messages as read
// @Tags messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID format"})
		return
	}

	if err := h.cmds.MarkRead(c.Request.Context(), id, actor); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete message
// @Description Delete a message the caller sent or received
// @Tags messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID format"})
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MessageHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
	case errors.Is(err, commands.ErrRecipientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
	case errors.Is(err, commands.ErrParentMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Parent message not found"})
	case errors.Is(err, commands.ErrNotMessageRecipient),
		errors.Is(err, commands.ErrNotMessageParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *MessageHandler) writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
	case errors.Is(err, queries.ErrMessageNotVisible):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
