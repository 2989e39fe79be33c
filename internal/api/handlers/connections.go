// internal/api/handlers/connections.go
package handlers

import (
	"net/http"

	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ConnectionHandler holds dependencies for the connection workflow.
type ConnectionHandler struct {
	service   services.ConnectionService
	validator *validator.Validate
}

// NewConnectionHandler creates a new ConnectionHandler.
func NewConnectionHandler(service services.ConnectionService, validate *validator.Validate) *ConnectionHandler {
	return &ConnectionHandler{service: service, validator: validate}
}

// Request godoc
// @Summary      Send a connection request
// @Description  One non-rejected connection exists per user pair.
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateConnectionRequest true "Receiver"
// @Success      201 {object}  models.Connection
// @Failure      409 {object}  map[string]string "Connection already exists"
// @Router       /connections [post]
// @Security     BearerAuth
func (h *ConnectionHandler) Request(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	conn, err := h.service.Request(c.Request.Context(), actor, req.ReceiverID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conn)
}

// Accept godoc
// @Summary      Accept a pending connection request
// @Description  Receiver only.
// @Tags         connections
// @Produce      json
// @Param        id path int true "Connection ID"
// @Success      200 {object}  models.Connection
// @Failure      403 {object}  map[string]string
// @Failure      422 {object}  map[string]string "Not pending"
// @Router       /connections/{id}/accept [put]
// @Security     BearerAuth
func (h *ConnectionHandler) Accept(c *gin.Context) {
	h.respond(c, true)
}

// Reject godoc
// @Summary      Reject a pending connection request
// @Description  Receiver only.
// @Tags         connections
// @Produce      json
// @Param        id path int true "Connection ID"
// @Success      200 {object}  models.Connection
// @Failure      403 {object}  map[string]string
// @Failure      422 {object}  map[string]string "Not pending"
// @Router       /connections/{id}/reject [put]
// @Security     BearerAuth
func (h *ConnectionHandler) Reject(c *gin.Context) {
	h.respond(c, false)
}

func (h *ConnectionHandler) respond(c *gin.Context, accept bool) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := h.service.Respond(c.Request.Context(), actor, id, accept)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conn)
}

// Disconnect godoc
// @Summary      Remove a connection
// @Description  Either party may disconnect.
// @Tags         connections
// @Param        id path int true "Connection ID"
// @Success      204
// @Failure      403 {object}  map[string]string
// @Router       /connections/{id} [delete]
// @Security     BearerAuth
func (h *ConnectionHandler) Disconnect(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Disconnect(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMine godoc
// @Summary      List the authenticated user's accepted connections
// @Tags         connections
// @Produce      json
// @Success      200 {array}  models.ConnectionWithUser
// @Router       /connections [get]
// @Security     BearerAuth
func (h *ConnectionHandler) ListMine(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	conns, err := h.service.ListConnections(c.Request.Context(), actor.ID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conns)
}

// ListPending godoc
// @Summary      List pending connection requests received
// @Tags         connections
// @Produce      json
// @Success      200 {array}  models.ConnectionWithUser
// @Router       /connections/pending [get]
// @Security     BearerAuth
func (h *ConnectionHandler) ListPending(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	conns, err := h.service.ListPendingReceived(c.Request.Context(), actor)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conns)
}
