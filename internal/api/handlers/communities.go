// internal/api/handlers/communities.go
package handlers

import (
	"net/http"

	"talenthub/internal/models"
	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CommunityHandler holds dependencies for community and membership operations.
type CommunityHandler struct {
	service     services.CommunityService
	postService services.PostService
	validator   *validator.Validate
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(service services.CommunityService, postService services.PostService, validate *validator.Validate) *CommunityHandler {
	return &CommunityHandler{service: service, postService: postService, validator: validate}
}

// Create godoc
// @Summary      Create a community
// @Description  The creator is enrolled as the community admin.
// @Tags         communities
// @Accept       json
// @Produce      json
// @Param        community body dto.CreateCommunityRequest true "Community details"
// @Success      201 {object}  models.Community
// @Router       /communities [post]
// @Security     BearerAuth
func (h *CommunityHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	community, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, community)
}

// Get godoc
// @Summary      Get a community by ID
// @Tags         communities
// @Produce      json
// @Param        id path int true "Community ID"
// @Success      200 {object}  models.Community
// @Failure      404 {object}  map[string]string
// @Router       /communities/{id} [get]
// @Security     BearerAuth
func (h *CommunityHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	community, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

// List godoc
// @Summary      List communities
// @Tags         communities
// @Produce      json
// @Param        limit  query int false "Page size"   default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {array}  models.Community
// @Router       /communities [get]
// @Security     BearerAuth
func (h *CommunityHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c, 20)

	communities, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, communities)
}

// Update godoc
// @Summary      Update a community
// @Description  Community admin only.
// @Tags         communities
// @Accept       json
// @Produce      json
// @Param        id path int true "Community ID"
// @Param        community body dto.UpdateCommunityRequest true "Fields to update"
// @Success      200 {object}  models.Community
// @Failure      403 {object}  map[string]string
// @Router       /communities/{id} [patch]
// @Security     BearerAuth
func (h *CommunityHandler) Update(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	community, err := h.service.Update(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

// Delete godoc
// @Summary      Delete a community
// @Description  Creator or admin only.
// @Tags         communities
// @Param        id path int true "Community ID"
// @Success      204
// @Failure      403 {object}  map[string]string
// @Router       /communities/{id} [delete]
// @Security     BearerAuth
func (h *CommunityHandler) Delete(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Join godoc
// @Summary      Join a community
// @Description  Invite-only communities cannot be joined directly.
// @Tags         communities
// @Param        id path int true "Community ID"
// @Success      204
// @Failure      403 {object}  map[string]string
// @Failure      409 {object}  map[string]string "Already a member"
// @Router       /communities/{id}/members [post]
// @Security     BearerAuth
func (h *CommunityHandler) Join(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Join(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Leave godoc
// @Summary      Leave a community
// @Tags         communities
// @Param        id path int true "Community ID"
// @Success      204
// @Failure      409 {object}  map[string]string "Creator cannot leave"
// @Router       /communities/{id}/members/me [delete]
// @Security     BearerAuth
func (h *CommunityHandler) Leave(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Leave(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// InviteMember godoc
// @Summary      Invite a user into a community
// @Description  Moderator or community admin only.
// @Tags         communities
// @Accept       json
// @Param        id path int true "Community ID"
// @Param        invite body dto.InviteMemberRequest true "User to invite"
// @Success      204
// @Failure      403 {object}  map[string]string
// @Router       /communities/{id}/invites [post]
// @Security     BearerAuth
func (h *CommunityHandler) InviteMember(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if err := h.service.InviteMember(c.Request.Context(), actor, id, req.UserID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveMember godoc
// @Summary      Remove a member from a community
// @Description  Moderator or community admin only; the creator cannot be removed.
// @Tags         communities
// @Param        id     path int true "Community ID"
// @Param        userID path int true "User ID"
// @Success      204
// @Failure      403 {object}  map[string]string
// @Router       /communities/{id}/members/{userID} [delete]
// @Security     BearerAuth
func (h *CommunityHandler) RemoveMember(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), actor, id, userID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMembers godoc
// @Summary      List a community's members
// @Description  Private communities are restricted to their members.
// @Tags         communities
// @Produce      json
// @Param        id path int true "Community ID"
// @Success      200 {array}  models.CommunityMemberWithUser
// @Failure      403 {object}  map[string]string
// @Router       /communities/{id}/members [get]
// @Security     BearerAuth
func (h *CommunityHandler) ListMembers(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	members, err := h.service.ListMembers(c.Request.Context(), actor, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// SetMemberRole godoc
// @Summary      Change a member's role
// @Description  Community admin only; the creator's role is fixed.
// @Tags         communities
// @Accept       json
// @Param        id path int true "Community ID"
// @Param        role body dto.SetMemberRoleRequest true "User and role"
// @Success      204
// @Failure      403 {object}  map[string]string
// @Router       /communities/{id}/members/role [put]
// @Security     BearerAuth
func (h *CommunityHandler) SetMemberRole(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.SetMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if err := h.service.SetMemberRole(c.Request.Context(), actor, id, req.UserID, models.CommunityRole(req.Role)); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPosts godoc
// @Summary      List a community's posts
// @Description  Private communities are restricted to their members.
// @Tags         communities
// @Produce      json
// @Param        id     path  int true  "Community ID"
// @Param        limit  query int false "Page size"   default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {array}  models.PostWithMeta
// @Failure      403 {object}  map[string]string
// @Router       /communities/{id}/posts [get]
// @Security     BearerAuth
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, offset := parsePagination(c, 20)

	posts, err := h.postService.ListCommunityPosts(c.Request.Context(), actor, id, limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
