// internal/api/handlers/admin.go
package handlers

import (
	"net/http"

	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AdminHandler holds dependencies for the admin panel. All routes here sit
// behind the RequireAdmin middleware; services re-check the actor anyway.
type AdminHandler struct {
	service          services.AdminService
	userService      services.UserService
	postService      services.PostService
	jobService       services.JobService
	communityService services.CommunityService
	validator        *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service services.AdminService, userService services.UserService, postService services.PostService, jobService services.JobService, communityService services.CommunityService, validate *validator.Validate) *AdminHandler {
	return &AdminHandler{
		service:          service,
		userService:      userService,
		postService:      postService,
		jobService:       jobService,
		communityService: communityService,
		validator:        validate,
	}
}

func (h *AdminHandler) bindList(c *gin.Context) (*dto.ListRequest, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return nil, false
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return nil, false
	}
	return &req, true
}

// ListUsers godoc
// @Summary      List users with activity counts
// @Tags         admin
// @Produce      json
// @Param        q      query string false "Filter by username, email or name"
// @Param        limit  query int    false "Page size"   default(25)
// @Param        offset query int    false "Page offset" default(0)
// @Success      200 {array}  models.AdminUserView
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	req, ok := h.bindList(c)
	if !ok {
		return
	}

	views, err := h.service.ListUsers(c.Request.Context(), actor, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListJobs godoc
// @Summary      List jobs with poster and applicant counts
// @Tags         admin
// @Produce      json
// @Param        q query string false "Filter by title, company or poster"
// @Success      200 {array}  models.AdminJobView
// @Router       /admin/jobs [get]
// @Security     BearerAuth
func (h *AdminHandler) ListJobs(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	req, ok := h.bindList(c)
	if !ok {
		return
	}

	views, err := h.service.ListJobs(c.Request.Context(), actor, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListPosts godoc
// @Summary      List posts with engagement counts
// @Description  Anonymous posts show their real author for moderation.
// @Tags         admin
// @Produce      json
// @Param        q query string false "Filter by content or author"
// @Success      200 {array}  models.AdminPostView
// @Router       /admin/posts [get]
// @Security     BearerAuth
func (h *AdminHandler) ListPosts(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	req, ok := h.bindList(c)
	if !ok {
		return
	}

	views, err := h.service.ListPosts(c.Request.Context(), actor, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListCommunities godoc
// @Summary      List communities with creators
// @Tags         admin
// @Produce      json
// @Param        q query string false "Filter by name or creator"
// @Success      200 {array}  models.AdminCommunityView
// @Router       /admin/communities [get]
// @Security     BearerAuth
func (h *AdminHandler) ListCommunities(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	req, ok := h.bindList(c)
	if !ok {
		return
	}

	views, err := h.service.ListCommunities(c.Request.Context(), actor, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// SetRoles godoc
// @Summary      Change a user's role flags
// @Description  An admin cannot revoke their own admin flag.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path int                true "User ID"
// @Param        roles body dto.SetRoleRequest true "Role flags"
// @Success      200 {object}  models.User
// @Failure      409 {object}  map[string]string
// @Router       /admin/users/{id}/roles [put]
// @Security     BearerAuth
func (h *AdminHandler) SetRoles(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.service.SetRoles(c.Request.Context(), actor, id, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user account
// @Tags         admin
// @Param        id path int true "User ID"
// @Success      204
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         admin
// @Param        id path int true "Post ID"
// @Success      204
// @Router       /admin/posts/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeletePost(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Tags         admin
// @Param        id path int true "Job ID"
// @Success      204
// @Router       /admin/jobs/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCommunity godoc
// @Summary      Delete a community
// @Tags         admin
// @Param        id path int true "Community ID"
// @Success      204
// @Router       /admin/communities/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteCommunity(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.communityService.Delete(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
