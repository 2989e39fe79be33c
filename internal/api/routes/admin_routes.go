// internal/api/routes/admin_routes.go
package routes

import (
	"talenthub/internal/api/handlers"
	"talenthub/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the admin panel routes behind both auth and
// the admin gate.
func RegisterAdminRoutes(
	rg *gin.RouterGroup,
	adminHandler *handlers.AdminHandler,
	resetHandler *handlers.PasswordResetHandler,
	authMiddleware gin.HandlerFunc,
) {
	admin := rg.Group("/admin")
	admin.Use(authMiddleware, middleware.RequireAdmin())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:id/roles", adminHandler.SetRoles)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.GET("/jobs", adminHandler.ListJobs)
		admin.DELETE("/jobs/:id", adminHandler.DeleteJob)
		admin.GET("/posts", adminHandler.ListPosts)
		admin.DELETE("/posts/:id", adminHandler.DeletePost)
		admin.GET("/communities", adminHandler.ListCommunities)
		admin.DELETE("/communities/:id", adminHandler.DeleteCommunity)
		admin.GET("/password-resets", resetHandler.List)
		admin.PATCH("/password-resets/:id", resetHandler.Process)
	}
}
