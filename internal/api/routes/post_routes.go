// internal/api/routes/post_routes.go
package routes

import (
	"talenthub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterPostRoutes registers all routes related to posts, likes, comments
// and reposts.
func RegisterPostRoutes(
	rg *gin.RouterGroup,
	postHandler *handlers.PostHandler,
	authMiddleware gin.HandlerFunc,
) {
	posts := rg.Group("/posts")
	posts.Use(authMiddleware)
	{
		posts.POST("/", postHandler.CreatePost)
		posts.GET("/feed", postHandler.ListFeed)
		posts.GET("/:id", postHandler.GetPost)
		posts.DELETE("/:id", postHandler.DeletePost)
		posts.PUT("/:id/like", postHandler.LikePost)
		posts.DELETE("/:id/like", postHandler.UnlikePost)
		posts.POST("/:id/comments", postHandler.CreateComment)
		posts.GET("/:id/comments", postHandler.ListComments)
		posts.POST("/:id/repost", postHandler.Repost)
	}

	comments := rg.Group("/comments")
	comments.Use(authMiddleware)
	{
		comments.DELETE("/:id", postHandler.DeleteComment)
	}
}
