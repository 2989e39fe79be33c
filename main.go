// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"talenthub/config"
	"talenthub/internal/app"
	"talenthub/internal/database"
	"talenthub/internal/server"

	_ "talenthub/docs" // Import generated docs (created by swag init)

	"github.com/go-playground/validator/v10"
)

// @title           TalentHub API
// @version         1.0
// @description     Professional networking and job board backend: profiles, posts, jobs, applications, communities, connections and messaging.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.NewMigrator(dbPool).Run(context.Background()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	validate := validator.New()

	application := app.New(cfg, dbPool, redisClient, validate)
	srv := server.NewServer(application)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Application gracefully stopped.")
}
