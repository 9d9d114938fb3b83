package services

import (
	"context"
	"time"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for account lifecycle and the user directory.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	VerifyAccount(ctx context.Context, req *dto.VerifyAccountRequest) (*models.User, error)
	ResendCode(ctx context.Context, req *dto.ResendCodeRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)
	List(ctx context.Context, actor dto.Actor, req *dto.ListUsersRequest) ([]models.User, error)
	SetStatus(ctx context.Context, req *dto.SetUserStatusRequest) (*models.User, error)
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	Create(ctx context.Context, poster dto.Actor, req *dto.CreateJobRequest) (*models.Job, error)
	List(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobDetails, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.JobDetails, error)
	ChangeStatus(ctx context.Context, req *dto.ChangeJobStatusRequest) (*models.Job, error)
	Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Job, error)
	SelectApplicant(ctx context.Context, req *dto.SelectApplicantRequest) (*models.Job, error)
	ListMine(ctx context.Context, req *dto.ListMyJobsRequest) ([]models.JobDetails, error)
}

// JobApplicationService defines the interface for the application ledger.
type JobApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.JobApplication, error)
	ListForUser(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.ApplicationDetails, error)
	GetByID(ctx context.Context, req *dto.GetJobApplicationRequest) (*models.ApplicationDetails, error)
	Withdraw(ctx context.Context, req *dto.WithdrawApplicationRequest) error
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error)
	ListForEmployer(ctx context.Context, req *dto.ListEmployerApplicationsRequest) ([]models.ApplicationDetails, error)
	ListForJob(ctx context.Context, req *dto.ListJobApplicationsRequest) ([]models.ApplicationDetails, error)
}

// CategoryService defines the interface for the category registry.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CodeIssuer issues and checks account verification codes.
type CodeIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID, account string) (string, error)
	Verify(ctx context.Context, userID uuid.UUID, code string) (bool, error)
}

// CodeSender delivers a verification code to the user.
type CodeSender interface {
	SendVerificationCode(ctx context.Context, user *models.User, code string) error
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Generate(userID uuid.UUID, role models.UserRole) (string, time.Time, error)
}
