// internal/api/routes/auth_routes.go
package routes

import (
	"talenthub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the unauthenticated account endpoints.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	userHandler *handlers.UserHandler,
	resetHandler *handlers.PasswordResetHandler,
) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)
		auth.POST("/password-reset", resetHandler.RequestReset)
	}
}
