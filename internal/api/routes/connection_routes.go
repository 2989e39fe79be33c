// internal/api/routes/connection_routes.go
package routes

import (
	"talenthub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterConnectionRoutes registers all routes related to connections.
func RegisterConnectionRoutes(
	rg *gin.RouterGroup,
	connectionHandler *handlers.ConnectionHandler,
	authMiddleware gin.HandlerFunc,
) {
	connections := rg.Group("/connections")
	connections.Use(authMiddleware)
	{
		connections.POST("/", connectionHandler.Request)
		connections.GET("/", connectionHandler.ListMine)
		connections.GET("/pending", connectionHandler.ListPending)
		connections.PUT("/:id/accept", connectionHandler.Accept)
		connections.PUT("/:id/reject", connectionHandler.Reject)
		connections.DELETE("/:id", connectionHandler.Disconnect)
	}
}
