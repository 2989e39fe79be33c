// internal/api/routes/routes.go
package routes

import (
	"log"

	"talenthub/internal/api/handlers"
	"talenthub/internal/api/middleware"
	"talenthub/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	apiV1 := router.Group("/api/v1")

	// Create handlers
	userHandler := handlers.NewUserHandler(app.UserService, app.Validator)
	postHandler := handlers.NewPostHandler(app.PostService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	applicationHandler := handlers.NewJobApplicationHandler(app.ApplicationService, app.Validator)
	communityHandler := handlers.NewCommunityHandler(app.CommunityService, app.PostService, app.Validator)
	connectionHandler := handlers.NewConnectionHandler(app.ConnectionService, app.Validator)
	messageHandler := handlers.NewMessageHandler(app.MessageService, app.Validator)
	companyHandler := handlers.NewCompanyHandler(app.CompanyService, app.Validator)
	resetHandler := handlers.NewPasswordResetHandler(app.PasswordResetService, app.Validator)
	adminHandler := handlers.NewAdminHandler(app.AdminService, app.UserService, app.PostService, app.JobService, app.CommunityService, app.Validator)

	// Middleware
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// Register resource routes
	RegisterAuthRoutes(apiV1, userHandler, resetHandler)
	RegisterUserRoutes(apiV1, userHandler, postHandler, authMiddleware)
	RegisterPostRoutes(apiV1, postHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, applicationHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware)
	RegisterCommunityRoutes(apiV1, communityHandler, authMiddleware)
	RegisterConnectionRoutes(apiV1, connectionHandler, authMiddleware)
	RegisterMessageRoutes(apiV1, messageHandler, authMiddleware)
	RegisterCompanyRoutes(apiV1, companyHandler, authMiddleware)
	RegisterAdminRoutes(apiV1, adminHandler, resetHandler, authMiddleware)

	// Health check
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
