// internal/api/handlers/password_resets.go
package handlers

import (
	"net/http"
	"strconv"

	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PasswordResetHandler holds dependencies for the admin-reviewed reset flow.
type PasswordResetHandler struct {
	service   services.PasswordResetService
	validator *validator.Validate
}

// NewPasswordResetHandler creates a new PasswordResetHandler.
func NewPasswordResetHandler(service services.PasswordResetService, validate *validator.Validate) *PasswordResetHandler {
	return &PasswordResetHandler{service: service, validator: validate}
}

// RequestReset godoc
// @Summary      Request a password reset
// @Description  Unauthenticated. Always returns 202 so the endpoint cannot probe for registered emails.
// @Tags         auth
// @Accept       json
// @Param        request body dto.CreatePasswordResetRequest true "Account email"
// @Success      202
// @Router       /auth/password-reset [post]
func (h *PasswordResetHandler) RequestReset(c *gin.Context) {
	var req dto.CreatePasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if err := h.service.RequestReset(c.Request.Context(), &req); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// List godoc
// @Summary      List password reset requests
// @Description  Admin only. pending=true restricts to unprocessed requests.
// @Tags         admin
// @Produce      json
// @Param        pending query bool false "Only pending requests"
// @Param        limit   query int  false "Page size"   default(25)
// @Param        offset  query int  false "Page offset" default(0)
// @Success      200 {array}  models.PasswordResetRequest
// @Failure      403 {object}  map[string]string
// @Router       /admin/password-resets [get]
// @Security     BearerAuth
func (h *PasswordResetHandler) List(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	onlyPending, _ := strconv.ParseBool(c.DefaultQuery("pending", "false"))
	limit, offset := parsePagination(c, 25)

	resets, err := h.service.List(c.Request.Context(), actor, onlyPending, limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resets)
}

// Process godoc
// @Summary      Approve or reject a password reset request
// @Description  Admin only. Approval issues a temporary password and replaces the user's credential atomically.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path int true "Reset request ID"
// @Param        outcome body dto.ProcessPasswordResetRequest true "Resolution"
// @Success      200 {object}  models.PasswordResetRequest
// @Failure      409 {object}  map[string]string "Already processed"
// @Failure      422 {object}  map[string]string "Transition not allowed"
// @Router       /admin/password-resets/{id} [patch]
// @Security     BearerAuth
func (h *PasswordResetHandler) Process(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.ProcessPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	reset, err := h.service.Process(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reset)
}
