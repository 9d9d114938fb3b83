package app

import (
	"job-marketplace-api/config"
	"job-marketplace-api/internal/auth"
	"job-marketplace-api/internal/cache"
	"job-marketplace-api/internal/services"
	"job-marketplace-api/internal/storage/postgres"
	"job-marketplace-api/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Cache       *cache.Client
	Validator   *validator.Validate
	Tokens      *auth.TokenManager

	UserService           services.UserService
	JobService            services.JobService
	JobApplicationService services.JobApplicationService
	CategoryService       services.CategoryService
}

// New wires repositories and services. redisClient may be nil, in which case caching and
// verification codes degrade to the fail-safe cache behaviour.
func New(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client) *Application {
	validate := validation.New()
	store := cache.New(redisClient)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration)
	codes := auth.NewCodeStore(store, cfg.OTP.Issuer, cfg.OTP.TTL)

	userRepo := postgres.NewUserRepo(pool)
	jobRepo := postgres.NewJobRepo(pool)
	appRepo := postgres.NewJobApplicationRepo(pool)
	categoryRepo := postgres.NewCategoryRepo(pool)

	applications := services.NewJobApplicationService(pool, appRepo, jobRepo, validate)

	return &Application{
		Config:      cfg,
		DBPool:      pool,
		RedisClient: redisClient,
		Cache:       store,
		Validator:   validate,
		Tokens:      tokens,

		UserService:           services.NewUserService(userRepo, codes, auth.LogSender{}, tokens, validate),
		JobService:            services.NewJobService(pool, jobRepo, applications, validate),
		JobApplicationService: applications,
		CategoryService:       services.NewCategoryService(categoryRepo, store, cfg.Cache.CategoryTTL, validate),
	}
}
