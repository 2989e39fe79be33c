// internal/api/handlers/users.go
package handlers

import (
	"net/http"

	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds dependencies for account and profile operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterRequest true "Account details"
// @Success      201 {object}  dto.AuthResponse
// @Failure      400 {object}  map[string]string
// @Failure      409 {object}  map[string]string "Username or email already taken"
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Log in with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Credentials"
// @Success      200 {object}  dto.AuthResponse
// @Failure      401 {object}  map[string]string
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfile godoc
// @Summary      Get a user profile
// @Description  Subject to the owner's visibility settings; hidden fields are omitted.
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object}  models.User
// @Failure      403 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetProfile(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), actor, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetMe godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200 {object}  models.User
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) GetMe(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	user, err := h.service.GetProfile(c.Request.Context(), actor, actor.ID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update the authenticated user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        profile body dto.UpdateProfileRequest true "Fields to update"
// @Success      200 {object}  models.User
// @Failure      400 {object}  map[string]string
// @Router       /users/me [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = actor.ID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary      Change the authenticated user's password
// @Tags         users
// @Accept       json
// @Success      204
// @Failure      401 {object}  map[string]string "Current password incorrect"
// @Router       /users/me/password [put]
// @Security     BearerAuth
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), actor, &req); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetTwoFactor godoc
// @Summary      Toggle two-factor authentication
// @Tags         users
// @Accept       json
// @Success      204
// @Router       /users/me/two-factor [put]
// @Security     BearerAuth
func (h *UserHandler) SetTwoFactor(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.SetTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.service.SetTwoFactor(c.Request.Context(), actor, req.Enabled); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAccount godoc
// @Summary      Delete the authenticated user's account
// @Tags         users
// @Success      204
// @Router       /users/me [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor, actor.ID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
