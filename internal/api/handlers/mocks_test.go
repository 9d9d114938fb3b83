package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"job-marketplace-api/internal/api/middleware"
	"job-marketplace-api/internal/auth"
	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/services"
	"job-marketplace-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

var testTokens = auth.NewTokenManager(testSecret, time.Hour)

func bearer(t *testing.T, req *http.Request, id uuid.UUID, role models.UserRole) {
	token, _, err := testTokens.Generate(id, role)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func authMW() gin.HandlerFunc { return middleware.JWTAuthMiddleware(testTokens) }

// MockUserService is a mock type for services.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) VerifyAccount(ctx context.Context, req *dto.VerifyAccountRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ResendCode(ctx context.Context, req *dto.ResendCodeRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, actor dto.Actor, req *dto.ListUsersRequest) ([]models.User, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) SetStatus(ctx context.Context, req *dto.SetUserStatusRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ services.UserService = (*MockUserService)(nil)

// MockJobService is a mock type for services.JobService
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) Create(ctx context.Context, poster dto.Actor, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, poster, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobDetails), args.Error(1)
}

func (m *MockJobService) GetByID(ctx context.Context, id uuid.UUID) (*models.JobDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobDetails), args.Error(1)
}

func (m *MockJobService) ChangeStatus(ctx context.Context, req *dto.ChangeJobStatusRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) SelectApplicant(ctx context.Context, req *dto.SelectApplicantRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListMine(ctx context.Context, req *dto.ListMyJobsRequest) ([]models.JobDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobDetails), args.Error(1)
}

var _ services.JobService = (*MockJobService)(nil)

// MockJobApplicationService is a mock type for services.JobApplicationService
type MockJobApplicationService struct {
	mock.Mock
}

func (m *MockJobApplicationService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) ListForUser(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.ApplicationDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationDetails), args.Error(1)
}

func (m *MockJobApplicationService) GetByID(ctx context.Context, req *dto.GetJobApplicationRequest) (*models.ApplicationDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApplicationDetails), args.Error(1)
}

func (m *MockJobApplicationService) Withdraw(ctx context.Context, req *dto.WithdrawApplicationRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockJobApplicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) ListForEmployer(ctx context.Context, req *dto.ListEmployerApplicationsRequest) ([]models.ApplicationDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationDetails), args.Error(1)
}

func (m *MockJobApplicationService) ListForJob(ctx context.Context, req *dto.ListJobApplicationsRequest) ([]models.ApplicationDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationDetails), args.Error(1)
}

var _ services.JobApplicationService = (*MockJobApplicationService)(nil)

// MockCategoryService is a mock type for services.CategoryService
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

var _ services.CategoryService = (*MockCategoryService)(nil)
