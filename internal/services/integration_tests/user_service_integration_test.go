package integration_tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-marketplace-api/internal/auth"
	"job-marketplace-api/internal/cache"
	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/services"
	"job-marketplace-api/internal/storage/postgres"
	"job-marketplace-api/internal/transport/dto"
	"job-marketplace-api/internal/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingSender records the last code instead of delivering it.
type capturingSender struct {
	codes map[uuid.UUID]string
}

func (s *capturingSender) SendVerificationCode(_ context.Context, user *models.User, code string) error {
	s.codes[user.ID] = code
	return nil
}

func setupUserServiceIntegrationTest(t *testing.T) (context.Context, services.UserService, *capturingSender, *pgxpool.Pool, *redis.Client) {
	t.Helper()
	pool, rdb := getTestClients(t)
	cleanupRedis(t, rdb)

	sender := &capturingSender{codes: map[uuid.UUID]string{}}
	svc := services.NewUserService(
		postgres.NewUserRepo(pool),
		auth.NewCodeStore(cache.New(rdb), "job-marketplace-test", 10*time.Minute),
		sender,
		auth.NewTokenManager("integration-secret", time.Hour),
		validation.New(),
	)
	return context.Background(), svc, sender, pool, rdb
}

func TestUserService_Integration_RegisterVerifyLogin(t *testing.T) {
	ctx, svc, sender, pool, rdb := setupUserServiceIntegrationTest(t)
	if rdb == nil {
		t.Skip("Redis is required to store verification codes")
	}
	defer cleanupTables(ctx, t, pool, "users")
	defer cleanupRedis(t, rdb)

	email := "Selam@Example.com"
	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:     &email,
		FirstName: "Selam",
		LastName:  "Tesfaye",
		Password:  "correct-horse",
		Role:      "employer",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusPending, user.Status)
	require.NotNil(t, user.Email)
	assert.Equal(t, "selam@example.com", *user.Email)

	_, err = svc.Login(ctx, &dto.LoginRequest{Identifier: "selam@example.com", Password: "correct-horse"})
	assert.True(t, errors.Is(err, services.ErrForbidden), "pending accounts cannot log in, got %v", err)

	code, ok := sender.codes[user.ID]
	require.True(t, ok, "a code should have been sent")

	_, err = svc.VerifyAccount(ctx, &dto.VerifyAccountRequest{Identifier: "selam@example.com", Code: wrongCode(code)})
	assert.True(t, errors.Is(err, services.ErrUnauthorized))

	verified, err := svc.VerifyAccount(ctx, &dto.VerifyAccountRequest{Identifier: "selam@example.com", Code: code})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, verified.Status)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Identifier: "selam@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Identifier: "selam@example.com", Password: "wrong-horse"})
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_Integration_RegisterConflict(t *testing.T) {
	ctx, svc, _, pool, _ := setupUserServiceIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, "users")

	phone := "+251911223344"
	req := func() *dto.RegisterRequest {
		p := phone
		return &dto.RegisterRequest{PhoneNumber: &p, FirstName: "Abebe", LastName: "Kebede", Password: "password123"}
	}

	first, err := svc.Register(ctx, req())
	require.NoError(t, err)
	assert.Equal(t, models.RoleWorker, first.Role)

	_, err = svc.Register(ctx, req())
	assert.True(t, errors.Is(err, services.ErrConflict), "got %v", err)
}

func TestUserService_Integration_AdminSetStatus(t *testing.T) {
	ctx, svc, _, pool, _ := setupUserServiceIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, "users")

	admin := createTestUser(t, ctx, pool, "admin@test.com", "Admin", models.RoleAdmin)
	super := createTestUser(t, ctx, pool, "super@test.com", "Super", models.RoleSuperAdmin)
	worker := createTestUser(t, ctx, pool, "worker@test.com", "Worker", models.RoleWorker)
	adminActor := dto.Actor{ID: admin.ID, Role: admin.Role}

	disabled, err := svc.SetStatus(ctx, &dto.SetUserStatusRequest{Actor: adminActor, TargetID: worker.ID, Status: models.UserStatusDisabled})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusDisabled, disabled.Status)

	_, err = svc.SetStatus(ctx, &dto.SetUserStatusRequest{Actor: adminActor, TargetID: super.ID, Status: models.UserStatusDisabled})
	assert.True(t, errors.Is(err, services.ErrForbidden))

	users, err := svc.List(ctx, adminActor, &dto.ListUsersRequest{Status: "disabled"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, worker.ID, users[0].ID)
}

// wrongCode returns a six-digit code guaranteed to differ from code.
func wrongCode(code string) string {
	if code == "000000" {
		return "111111"
	}
	return "000000"
}
