// internal/api/routes/message_routes.go
package routes

import (
	"talenthub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterMessageRoutes registers all routes related to direct messages.
func RegisterMessageRoutes(
	rg *gin.RouterGroup,
	messageHandler *handlers.MessageHandler,
	authMiddleware gin.HandlerFunc,
) {
	messages := rg.Group("/messages")
	messages.Use(authMiddleware)
	{
		messages.POST("/", messageHandler.Send)
		messages.GET("/", messageHandler.Inbox)
		messages.GET("/:userID", messageHandler.GetConversation)
		messages.PUT("/:userID/read", messageHandler.MarkRead)
		messages.PATCH("/:id/read", messageHandler.MarkMessageRead)
	}
}
