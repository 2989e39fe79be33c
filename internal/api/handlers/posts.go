// internal/api/handlers/posts.go
package handlers

import (
	"net/http"

	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PostHandler holds dependencies for post, like, comment and repost operations.
type PostHandler struct {
	service   services.PostService
	validator *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostService, validate *validator.Validate) *PostHandler {
	return &PostHandler{service: service, validator: validate}
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Posts into a community require membership. Anonymous posts hide the author's name in feeds.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post body dto.CreatePostRequest true "Post content"
// @Success      201 {object}  models.Post
// @Failure      403 {object}  map[string]string
// @Router       /posts [post]
// @Security     BearerAuth
func (h *PostHandler) CreatePost(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get a post by ID
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {object}  models.Post
// @Failure      404 {object}  map[string]string
// @Router       /posts/{id} [get]
// @Security     BearerAuth
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Author or admin only. Repost pointers to the post are removed with it.
// @Tags         posts
// @Param        id path int true "Post ID"
// @Success      204
// @Failure      403 {object}  map[string]string
// @Router       /posts/{id} [delete]
// @Security     BearerAuth
func (h *PostHandler) DeletePost(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFeed godoc
// @Summary      List the global feed
// @Tags         posts
// @Produce      json
// @Param        limit  query int false "Page size"    default(20)
// @Param        offset query int false "Page offset"  default(0)
// @Success      200 {array}  models.PostWithMeta
// @Router       /posts/feed [get]
// @Security     BearerAuth
func (h *PostHandler) ListFeed(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	limit, offset := parsePagination(c, 20)
	req := dto.ListFeedRequest{ViewerID: actor.ID, Limit: limit, Offset: offset}

	posts, err := h.service.ListFeed(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListUserPosts godoc
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {array}  models.PostWithMeta
// @Router       /users/{id}/posts [get]
// @Security     BearerAuth
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	userID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts, err := h.service.ListUserPosts(c.Request.Context(), userID, actor.ID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// LikePost godoc
// @Summary      Like a post
// @Description  Liking an already-liked post is a no-op.
// @Tags         posts
// @Param        id path int true "Post ID"
// @Success      204
// @Router       /posts/{id}/like [put]
// @Security     BearerAuth
func (h *PostHandler) LikePost(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.LikePost(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnlikePost godoc
// @Summary      Remove a like from a post
// @Tags         posts
// @Param        id path int true "Post ID"
// @Success      204
// @Router       /posts/{id}/like [delete]
// @Security     BearerAuth
func (h *PostHandler) UnlikePost(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UnlikePost(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        comment body dto.CreateCommentRequest true "Comment content"
// @Success      201 {object}  models.Comment
// @Router       /posts/{id}/comments [post]
// @Security     BearerAuth
func (h *PostHandler) CreateComment(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	postID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.PostID = postID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	comment, err := h.service.CommentOnPost(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListComments godoc
// @Summary      List a post's comments
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {array}  models.CommentWithAuthor
// @Router       /posts/{id}/comments [get]
// @Security     BearerAuth
func (h *PostHandler) ListComments(c *gin.Context) {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comments, err := h.service.ListComments(c.Request.Context(), postID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Allowed for the comment author, the post author, or an admin.
// @Tags         posts
// @Param        id path int true "Comment ID"
// @Success      204
// @Failure      403 {object}  map[string]string
// @Router       /comments/{id} [delete]
// @Security     BearerAuth
func (h *PostHandler) DeleteComment(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Repost godoc
// @Summary      Repost a post
// @Description  Reposting a repost shares the root original.
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      201 {object}  models.Post
// @Failure      409 {object}  map[string]string "Already reposted"
// @Router       /posts/{id}/repost [post]
// @Security     BearerAuth
func (h *PostHandler) Repost(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repost, err := h.service.Repost(c.Request.Context(), actor, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, repost)
}
