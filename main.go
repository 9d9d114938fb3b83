package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-marketplace-api/config"
	"job-marketplace-api/internal/app"
	"job-marketplace-api/internal/database"
	"job-marketplace-api/internal/server"

	_ "job-marketplace-api/docs"

	"github.com/redis/go-redis/v9"
)

// @title           Job Marketplace API
// @version         1.0
// @description     Job postings, applications and categories for a two-sided job marketplace.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api
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

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if cfg.DB.Migrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.Migrate(ctx, dbPool)
		cancel()
		if err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Redis backs caching and verification codes; the API keeps serving without it.
	var redisClient *redis.Client
	if rdb, err := database.NewRedisClient(cfg.Redis); err != nil {
		log.Printf("WARN: %v. Continuing without Redis.", err)
	} else {
		redisClient = rdb
		defer redisClient.Close()
	}

	application := app.New(cfg, dbPool, redisClient)
	srv := server.NewServer(application)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Application gracefully stopped.")
}
