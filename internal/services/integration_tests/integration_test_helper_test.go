package integration_tests

import (
	"context"
	"log"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"job-marketplace-api/internal/database"
	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/storage/postgres"
	"job-marketplace-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to a time
func ptrTime(t time.Time) *time.Time { return &t }

// Helper function to create an active user for tests
func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, email, firstName string, role models.UserRole) *models.User {
	t.Helper()
	userRepo := postgres.NewUserRepo(pool)
	user, err := userRepo.Create(ctx, &dto.CreateUserRequest{
		Email:        &email,
		FirstName:    firstName,
		LastName:     "Tester",
		PasswordHash: "not-a-real-hash",
		Role:         role,
		Status:       models.UserStatusActive,
	})
	require.NoError(t, err, "Failed to create test user %s", email)
	require.NotNil(t, user)
	return user
}

// Helper function to create an Available job for tests
func createTestJob(t *testing.T, ctx context.Context, pool *pgxpool.Pool, posterID uuid.UUID, title string, categoryID *uuid.UUID) *models.Job {
	t.Helper()
	jobRepo := postgres.NewJobRepo(pool)
	job, err := jobRepo.Create(ctx, &dto.CreateJobRequest{
		Title:       title,
		Description: "Integration test job",
		Location:    "Addis Ababa",
		Salary:      "1000 ETB",
		JobType:     "Full-time",
		Deadline:    ptrTime(time.Now().Add(30 * 24 * time.Hour)),
		CategoryID:  categoryID,
		PosterID:    posterID,
	})
	require.NoError(t, err, "Failed to create test job for poster %s", posterID)
	require.NotNil(t, job)
	return job
}

var (
	testDB          *pgxpool.Pool
	testRedisClient *redis.Client
	migrateOnce     sync.Once
	migrateErr      error
)

// getTestClients connects to the test database named by TEST_DATABASE_URL and, when
// TEST_REDIS_URL is set, to a test Redis. Tests are skipped without a database.
func getTestClients(t *testing.T) (*pgxpool.Pool, *redis.Client) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set")
	}

	if testDB == nil {
		pool, err := pgxpool.New(context.Background(), dsn)
		require.NoError(t, err, "Failed to create test pool")
		testDB = pool
	}
	runMigrations(t)

	if testRedisClient == nil {
		redisAddr := os.Getenv("TEST_REDIS_URL")
		if redisAddr == "" {
			log.Println("WARN: TEST_REDIS_URL not set. Redis-dependent tests will be skipped.")
		} else {
			rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
			ctxRedis, cancelRedis := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancelRedis()
			if err := rdb.Ping(ctxRedis).Err(); err != nil {
				log.Printf("WARN: Failed to connect to test Redis at %s: %v.", redisAddr, err)
			} else {
				testRedisClient = rdb
			}
		}
	}
	return testDB, testRedisClient
}

func runMigrations(t *testing.T) {
	t.Helper()
	migrateOnce.Do(func() {
		migrateErr = database.Migrate(context.Background(), testDB)
	})
	require.NoError(t, migrateErr)
}

// cleanupTables truncates the given tables for test isolation.
func cleanupTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	if len(tables) == 0 {
		return
	}
	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" CASCADE")
	require.NoError(t, err, "Failed to truncate %v", tables)
	log.Printf("Cleaned tables: %s", strings.Join(tables, ", "))
}

// cleanupRedis flushes the test Redis database.
func cleanupRedis(t *testing.T, client *redis.Client) {
	t.Helper()
	if client == nil {
		return
	}
	require.NoError(t, client.FlushDB(context.Background()).Err(), "Failed to flush test Redis database")
}
