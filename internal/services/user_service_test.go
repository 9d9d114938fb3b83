package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/services"
	"job-marketplace-api/internal/storage"
	"job-marketplace-api/internal/transport/dto"
	"job-marketplace-api/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userServiceFixture struct {
	ctx    context.Context
	svc    services.UserService
	repo   *MockUserRepository
	codes  *MockCodeIssuer
	sender *MockCodeSender
	tokens *MockTokenIssuer
}

func setupUserServiceTest() *userServiceFixture {
	f := &userServiceFixture{
		ctx:    context.Background(),
		repo:   new(MockUserRepository),
		codes:  new(MockCodeIssuer),
		sender: new(MockCodeSender),
		tokens: new(MockTokenIssuer),
	}
	f.svc = services.NewUserService(f.repo, f.codes, f.sender, f.tokens, validation.New())
	return f
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestUserService_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := setupUserServiceTest()
		req := &dto.RegisterRequest{
			Email:     ptrString("  Worker@Example.com "),
			FirstName: "Abebe",
			LastName:  "Bikila",
			Password:  "supersecret",
		}
		created := &models.User{ID: uuid.New(), Email: ptrString("worker@example.com"), Role: models.RoleWorker, Status: models.UserStatusPending}

		f.repo.On("Create", mock.Anything, mock.MatchedBy(func(r *dto.CreateUserRequest) bool {
			return *r.Email == "worker@example.com" &&
				r.Role == models.RoleWorker &&
				r.Status == models.UserStatusPending &&
				bcrypt.CompareHashAndPassword([]byte(r.PasswordHash), []byte("supersecret")) == nil
		})).Return(created, nil).Once()
		f.codes.On("Issue", mock.Anything, created.ID, "worker@example.com").Return("123456", nil).Once()
		f.sender.On("SendVerificationCode", mock.Anything, created, "123456").Return(nil).Once()

		user, err := f.svc.Register(f.ctx, req)
		require.NoError(t, err)
		assert.Equal(t, models.UserStatusPending, user.Status)
		f.repo.AssertExpectations(t)
		f.codes.AssertExpectations(t)
		f.sender.AssertExpectations(t)
	})

	t.Run("NeedsEmailOrPhone", func(t *testing.T) {
		f := setupUserServiceTest()
		_, err := f.svc.Register(f.ctx, &dto.RegisterRequest{Email: ptrString("  "), FirstName: "Abebe", LastName: "Bikila", Password: "supersecret"})

		var verr *services.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"email", "phone_number"}, verr.FieldNames())
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("InvalidFields", func(t *testing.T) {
		f := setupUserServiceTest()
		_, err := f.svc.Register(f.ctx, &dto.RegisterRequest{PhoneNumber: ptrString("0912"), FirstName: "A", LastName: "Bikila", Password: "short", Role: "admin"})

		var verr *services.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"first_name", "password", "phone_number", "role"}, verr.FieldNames())
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		f := setupUserServiceTest()
		f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicateEmail).Once()

		_, err := f.svc.Register(f.ctx, &dto.RegisterRequest{Email: ptrString("a@example.com"), FirstName: "Abebe", LastName: "Bikila", Password: "supersecret"})
		assert.True(t, errors.Is(err, services.ErrConflict))
		f.codes.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DeliveryFailureStillRegisters", func(t *testing.T) {
		f := setupUserServiceTest()
		created := &models.User{ID: uuid.New(), PhoneNumber: ptrString("+251912345678"), Status: models.UserStatusPending}
		f.repo.On("Create", mock.Anything, mock.Anything).Return(created, nil).Once()
		f.codes.On("Issue", mock.Anything, created.ID, "+251912345678").Return("", errors.New("redis down")).Once()

		user, err := f.svc.Register(f.ctx, &dto.RegisterRequest{PhoneNumber: ptrString("+251912345678"), FirstName: "Abebe", LastName: "Bikila", Password: "supersecret", Role: "both"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})
}

func TestUserService_VerifyAccount(t *testing.T) {
	pending := func() *models.User {
		return &models.User{ID: uuid.New(), Email: ptrString("a@example.com"), Status: models.UserStatusPending}
	}

	t.Run("Success", func(t *testing.T) {
		f := setupUserServiceTest()
		user := pending()
		f.repo.On("GetByIdentifier", mock.Anything, "a@example.com").Return(user, nil).Once()
		f.codes.On("Verify", mock.Anything, user.ID, "123456").Return(true, nil).Once()
		active := *user
		active.Status = models.UserStatusActive
		f.repo.On("UpdateStatus", mock.Anything, user.ID, models.UserStatusActive).Return(&active, nil).Once()

		got, err := f.svc.VerifyAccount(f.ctx, &dto.VerifyAccountRequest{Identifier: "a@example.com", Code: "123456"})
		require.NoError(t, err)
		assert.Equal(t, models.UserStatusActive, got.Status)
	})

	t.Run("WrongCode", func(t *testing.T) {
		f := setupUserServiceTest()
		user := pending()
		f.repo.On("GetByIdentifier", mock.Anything, "a@example.com").Return(user, nil).Once()
		f.codes.On("Verify", mock.Anything, user.ID, "654321").Return(false, nil).Once()

		_, err := f.svc.VerifyAccount(f.ctx, &dto.VerifyAccountRequest{Identifier: "a@example.com", Code: "654321"})
		assert.True(t, errors.Is(err, services.ErrUnauthorized))
		f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AlreadyActive", func(t *testing.T) {
		f := setupUserServiceTest()
		user := pending()
		user.Status = models.UserStatusActive
		f.repo.On("GetByIdentifier", mock.Anything, "a@example.com").Return(user, nil).Once()

		_, err := f.svc.VerifyAccount(f.ctx, &dto.VerifyAccountRequest{Identifier: "a@example.com", Code: "123456"})
		assert.True(t, errors.Is(err, services.ErrInvalidState))
	})

	t.Run("UnknownUser", func(t *testing.T) {
		f := setupUserServiceTest()
		f.repo.On("GetByIdentifier", mock.Anything, "nobody@example.com").Return(nil, storage.ErrNotFound).Once()

		_, err := f.svc.VerifyAccount(f.ctx, &dto.VerifyAccountRequest{Identifier: "nobody@example.com", Code: "123456"})
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}

func TestUserService_ResendCode(t *testing.T) {
	f := setupUserServiceTest()
	user := &models.User{ID: uuid.New(), Email: ptrString("a@example.com"), Status: models.UserStatusPending}
	f.repo.On("GetByIdentifier", mock.Anything, "a@example.com").Return(user, nil).Once()
	f.codes.On("Issue", mock.Anything, user.ID, "a@example.com").Return("111222", nil).Once()
	f.sender.On("SendVerificationCode", mock.Anything, user, "111222").Return(nil).Once()

	require.NoError(t, f.svc.ResendCode(f.ctx, &dto.ResendCodeRequest{Identifier: "a@example.com"}))
	f.sender.AssertExpectations(t)
}

func TestUserService_Login(t *testing.T) {
	password := "supersecret"

	tests := []struct {
		name        string
		status      models.UserStatus
		password    string
		repoErr     error
		expectedErr error
	}{
		{name: "Success", status: models.UserStatusActive, password: password},
		{name: "WrongPassword", status: models.UserStatusActive, password: "nope-nope", expectedErr: services.ErrUnauthorized},
		{name: "UnknownUser", repoErr: storage.ErrNotFound, password: password, expectedErr: services.ErrUnauthorized},
		{name: "PendingUser", status: models.UserStatusPending, password: password, expectedErr: services.ErrForbidden},
		{name: "DisabledUser", status: models.UserStatusDisabled, password: password, expectedErr: services.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupUserServiceTest()
			user := &models.User{ID: uuid.New(), Email: ptrString("a@example.com"), Role: models.RoleEmployer, Status: tt.status, PasswordHash: hashed(t, password)}
			if tt.repoErr != nil {
				f.repo.On("GetByIdentifier", mock.Anything, "a@example.com").Return(nil, tt.repoErr).Once()
			} else {
				f.repo.On("GetByIdentifier", mock.Anything, "a@example.com").Return(user, nil).Once()
			}
			expires := time.Now().Add(time.Hour)
			f.tokens.On("Generate", user.ID, models.RoleEmployer).Return("signed.jwt.token", expires, nil).Maybe()

			resp, err := f.svc.Login(f.ctx, &dto.LoginRequest{Identifier: "a@example.com", Password: tt.password})
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr), "expected %v, got %v", tt.expectedErr, err)
				f.tokens.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed.jwt.token", resp.Token)
			assert.Equal(t, user.ID, resp.User.ID)
			assert.Equal(t, expires, resp.ExpiresAt)
		})
	}
}

func TestUserService_Me(t *testing.T) {
	f := setupUserServiceTest()
	id := uuid.New()
	f.repo.On("GetByID", mock.Anything, id).Return(nil, storage.ErrNotFound).Once()

	_, err := f.svc.Me(f.ctx, id)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestUserService_List_AdminOnly(t *testing.T) {
	f := setupUserServiceTest()
	_, err := f.svc.List(f.ctx, dto.Actor{ID: uuid.New(), Role: models.RoleEmployer}, &dto.ListUsersRequest{})
	assert.True(t, errors.Is(err, services.ErrForbidden))

	req := &dto.ListUsersRequest{Status: "active"}
	f.repo.On("List", mock.Anything, req).Return([]models.User{{ID: uuid.New()}}, nil).Once()
	users, err := f.svc.List(f.ctx, dto.Actor{ID: uuid.New(), Role: models.RoleAdmin}, req)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_SetStatus(t *testing.T) {
	admin := dto.Actor{ID: uuid.New(), Role: models.RoleAdmin}
	superadmin := dto.Actor{ID: uuid.New(), Role: models.RoleSuperAdmin}

	tests := []struct {
		name         string
		actor        dto.Actor
		targetRole   models.UserRole
		targetStatus models.UserStatus
		status       models.UserStatus
		expectedErr  error
	}{
		{name: "AdminDisablesWorker", actor: admin, targetRole: models.RoleWorker, targetStatus: models.UserStatusActive, status: models.UserStatusDisabled},
		{name: "SuperadminDisablesSuperadmin", actor: superadmin, targetRole: models.RoleSuperAdmin, targetStatus: models.UserStatusActive, status: models.UserStatusDisabled},
		{name: "AdminCannotTouchSuperadmin", actor: admin, targetRole: models.RoleSuperAdmin, targetStatus: models.UserStatusActive, status: models.UserStatusDisabled, expectedErr: services.ErrForbidden},
		{name: "NonAdminForbidden", actor: dto.Actor{ID: uuid.New(), Role: models.RoleBoth}, targetRole: models.RoleWorker, targetStatus: models.UserStatusActive, status: models.UserStatusDisabled, expectedErr: services.ErrForbidden},
		{name: "PendingTarget", actor: admin, targetRole: models.RoleWorker, targetStatus: models.UserStatusPending, status: models.UserStatusActive, expectedErr: services.ErrInvalidState},
		{name: "CannotSetPending", actor: admin, targetRole: models.RoleWorker, targetStatus: models.UserStatusActive, status: models.UserStatusPending, expectedErr: services.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupUserServiceTest()
			target := &models.User{ID: uuid.New(), Role: tt.targetRole, Status: tt.targetStatus}
			f.repo.On("GetByID", mock.Anything, target.ID).Return(target, nil).Maybe()
			if tt.expectedErr == nil {
				updated := *target
				updated.Status = tt.status
				f.repo.On("UpdateStatus", mock.Anything, target.ID, tt.status).Return(&updated, nil).Once()
			}

			got, err := f.svc.SetStatus(f.ctx, &dto.SetUserStatusRequest{Actor: tt.actor, TargetID: target.ID, Status: tt.status})
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr), "expected %v, got %v", tt.expectedErr, err)
				f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}
