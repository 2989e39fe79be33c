// internal/api/routes/company_routes.go
package routes

import (
	"talenthub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers all routes related to company pages.
func RegisterCompanyRoutes(
	rg *gin.RouterGroup,
	companyHandler *handlers.CompanyHandler,
	authMiddleware gin.HandlerFunc,
) {
	companies := rg.Group("/companies")
	companies.Use(authMiddleware)
	{
		companies.POST("/", companyHandler.Create)
		companies.GET("/", companyHandler.List)
		companies.GET("/:id", companyHandler.Get)
		companies.PATCH("/:id", companyHandler.Update)
		companies.DELETE("/:id", companyHandler.Delete)
	}
}
