// internal/api/routes/application_routes.go
package routes

import (
	"talenthub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the application pipeline routes not
// nested under /jobs.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler *handlers.JobApplicationHandler,
	authMiddleware gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.GET("/mine", applicationHandler.ListMine)
		applications.GET("/:id", applicationHandler.GetApplication)
		applications.PATCH("/:id/status", applicationHandler.UpdateStatus)
	}
}
