// internal/api/handlers/messages.go
package handlers

import (
	"net/http"

	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MessageHandler holds dependencies for direct messaging.
type MessageHandler struct {
	service   services.MessageService
	validator *validator.Validate
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service services.MessageService, validate *validator.Validate) *MessageHandler {
	return &MessageHandler{service: service, validator: validate}
}

// Send godoc
// @Summary      Send a direct message
// @Description  Any user can message any other user; messaging yourself is rejected.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message body dto.SendMessageRequest true "Message"
// @Success      201 {object}  models.Message
// @Failure      400 {object}  map[string]string "Self-message"
// @Router       /messages [post]
// @Security     BearerAuth
func (h *MessageHandler) Send(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	msg, err := h.service.Send(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetConversation godoc
// @Summary      Get the conversation with another user
// @Description  Returns the thread newest first and marks the partner's messages as read.
// @Tags         messages
// @Produce      json
// @Param        userID path  int true  "Partner user ID"
// @Param        limit  query int false "Page size"   default(50)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {array}  models.Message
// @Router       /messages/{userID} [get]
// @Security     BearerAuth
func (h *MessageHandler) GetConversation(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	partnerID, err := parseIDParam(c, "userID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, offset := parsePagination(c, 50)

	msgs, err := h.service.GetConversation(c.Request.Context(), actor, partnerID, limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkRead godoc
// @Summary      Mark a conversation as read
// @Tags         messages
// @Param        userID path int true "Partner user ID"
// @Success      204
// @Router       /messages/{userID}/read [put]
// @Security     BearerAuth
func (h *MessageHandler) MarkRead(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	partnerID, err := parseIDParam(c, "userID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.MarkConversationRead(c.Request.Context(), actor, partnerID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkMessageRead godoc
// @Summary      Mark a single message as read
// @Tags         messages
// @Param        id path int true "Message ID"
// @Success      204
// @Failure      403 {object} map[string]string "Not the receiver"
// @Router       /messages/{id}/read [patch]
// @Security     BearerAuth
func (h *MessageHandler) MarkMessageRead(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	messageID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.MarkMessageRead(c.Request.Context(), actor, messageID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Inbox godoc
// @Summary      List conversations with unread counts
// @Tags         messages
// @Produce      json
// @Success      200 {array}  models.ConversationSummary
// @Router       /messages [get]
// @Security     BearerAuth
func (h *MessageHandler) Inbox(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	summaries, err := h.service.Inbox(c.Request.Context(), actor)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}
