// internal/api/routes/job_routes.go
package routes

import (
	"talenthub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job postings and bookmarks.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.JobApplicationHandler,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	jobs.Use(authMiddleware)
	{
		jobs.POST("/", jobHandler.CreateJob)
		jobs.GET("/", jobHandler.ListJobs)
		jobs.GET("/mine", jobHandler.ListMyJobs)
		jobs.GET("/saved", jobHandler.ListSavedJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PATCH("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
		jobs.PUT("/:id/archive", jobHandler.ArchiveJob)
		jobs.DELETE("/:id/archive", jobHandler.UnarchiveJob)
		jobs.PUT("/:id/save", jobHandler.SaveJob)
		jobs.DELETE("/:id/save", jobHandler.UnsaveJob)
		jobs.POST("/:id/applications", applicationHandler.Apply)
		jobs.GET("/:id/applications", applicationHandler.ListByJob)
	}
}
