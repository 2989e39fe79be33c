// internal/api/routes/user_routes.go
package routes

import (
	"talenthub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers all routes related to profiles.
// It applies the provided authentication middleware to all of them.
func RegisterUserRoutes(
	rg *gin.RouterGroup,
	userHandler *handlers.UserHandler,
	postHandler *handlers.PostHandler,
	authMiddleware gin.HandlerFunc,
) {
	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", userHandler.GetMe)
		users.PATCH("/me", userHandler.UpdateProfile)
		users.DELETE("/me", userHandler.DeleteAccount)
		users.PUT("/me/password", userHandler.ChangePassword)
		users.PUT("/me/two-factor", userHandler.SetTwoFactor)
		users.GET("/:id", userHandler.GetProfile)
		users.GET("/:id/posts", postHandler.ListUserPosts)
	}
}
