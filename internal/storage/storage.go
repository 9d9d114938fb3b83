package storage

import (
	"context"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner starts database transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// GetByIdentifier looks a user up by email or phone number.
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	List(ctx context.Context, req *dto.ListUsersRequest) ([]models.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error)
}

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	WithTx(tx pgx.Tx) JobRepository
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	// GetByIDForUpdate locks the job row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Job, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*models.JobDetails, error)
	List(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobDetails, error)
	ListByPoster(ctx context.Context, req *dto.ListMyJobsRequest) ([]models.JobDetails, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error)
	SetSelectedApplicant(ctx context.Context, req *dto.SetSelectedApplicantRequest) (*models.Job, error)
}

// JobApplicationRepository defines the interface for job application data operations.
type JobApplicationRepository interface {
	WithTx(tx pgx.Tx) JobApplicationRepository
	Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error)
	// GetOwned returns the application only when it belongs to the given applicant.
	GetOwned(ctx context.Context, req *dto.GetJobApplicationRequest) (*models.ApplicationDetails, error)
	ListByApplicant(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.ApplicationDetails, error)
	ListByPoster(ctx context.Context, req *dto.ListEmployerApplicationsRequest) ([]models.ApplicationDetails, error)
	ListByJob(ctx context.Context, req *dto.ListJobApplicationsRequest) ([]models.ApplicationDetails, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error)
	// DeleteOwned deletes the application only when it belongs to the given applicant.
	DeleteOwned(ctx context.Context, req *dto.WithdrawApplicationRequest) error
}
