// internal/app/app.go
package app

import (
	"talenthub/config"
	"talenthub/internal/services"
	"talenthub/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	UserService          services.UserService
	PostService          services.PostService
	JobService           services.JobService
	ApplicationService   services.JobApplicationService
	CommunityService     services.CommunityService
	ConnectionService    services.ConnectionService
	MessageService       services.MessageService
	CompanyService       services.CompanyService
	PasswordResetService services.PasswordResetService
	AdminService         services.AdminService
}

// New wires repositories and services around the shared connection pool.
func New(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, validate *validator.Validate) *Application {
	userRepo := postgres.NewUserRepo(pool)
	postRepo := postgres.NewPostRepo(pool)
	jobRepo := postgres.NewJobRepo(pool)
	appRepo := postgres.NewJobApplicationRepo(pool)
	savedJobRepo := postgres.NewSavedJobRepo(pool)
	communityRepo := postgres.NewCommunityRepo(pool)
	connectionRepo := postgres.NewConnectionRepo(pool)
	messageRepo := postgres.NewMessageRepo(pool)
	companyRepo := postgres.NewCompanyRepo(pool)
	resetRepo := postgres.NewPasswordResetRepo(pool)
	adminRepo := postgres.NewAdminRepo(pool)

	return &Application{
		Config:      cfg,
		DBPool:      pool,
		RedisClient: redisClient,
		Validator:   validate,

		UserService:          services.NewUserService(userRepo, connectionRepo, appRepo, cfg.JWT.Secret, cfg.JWT.Expiration),
		PostService:          services.NewPostService(postRepo, communityRepo),
		JobService:           services.NewJobService(jobRepo, savedJobRepo),
		ApplicationService:   services.NewJobApplicationService(appRepo, jobRepo),
		CommunityService:     services.NewCommunityService(communityRepo),
		ConnectionService:    services.NewConnectionService(connectionRepo),
		MessageService:       services.NewMessageService(messageRepo),
		CompanyService:       services.NewCompanyService(companyRepo),
		PasswordResetService: services.NewPasswordResetService(resetRepo, userRepo),
		AdminService:         services.NewAdminService(adminRepo, userRepo),
	}
}
