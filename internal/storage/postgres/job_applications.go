package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/storage"
	"job-marketplace-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `a.id, a.job_id, a.applicant_id, a.resume, a.cover_letter, a.status, a.created_at, a.updated_at`

const applicationDetailsQuery = `SELECT ` + applicationColumns + `,
	j.id, j.title, j.location, j.job_type, j.salary, j.deadline, j.status, j.poster_id, j.category_id, c.name,
	u.id, u.first_name, u.last_name, u.email, u.phone_number
	FROM job_applications a
	JOIN jobs j ON j.id = a.job_id
	LEFT JOIN categories c ON c.id = j.category_id
	JOIN users u ON u.id = a.applicant_id`

// JobApplicationRepo implements the storage.JobApplicationRepository interface using PostgreSQL.
type JobApplicationRepo struct {
	db storage.Querier
}

// NewJobApplicationRepo creates a new JobApplicationRepo.
func NewJobApplicationRepo(db storage.Querier) *JobApplicationRepo {
	return &JobApplicationRepo{db: db}
}

func (r *JobApplicationRepo) WithTx(tx pgx.Tx) storage.JobApplicationRepository {
	return &JobApplicationRepo{db: tx}
}

// Compile-time check to ensure JobApplicationRepo implements JobApplicationRepository
var _ storage.JobApplicationRepository = (*JobApplicationRepo)(nil)

func applicationScanTargets(a *models.JobApplication) []any {
	return []any{
		&a.ID,
		&a.JobID,
		&a.ApplicantID,
		&a.Resume,
		&a.CoverLetter,
		&a.Status,
		&a.AppliedDate,
		&a.UpdatedAt,
	}
}

func scanApplication(row scanner) (*models.JobApplication, error) {
	var a models.JobApplication
	if err := row.Scan(applicationScanTargets(&a)...); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanApplicationDetails(row scanner) (*models.ApplicationDetails, error) {
	var d models.ApplicationDetails
	targets := append(applicationScanTargets(&d.JobApplication),
		&d.Job.ID,
		&d.Job.Title,
		&d.Job.Location,
		&d.Job.JobType,
		&d.Job.Salary,
		&d.Job.Deadline,
		&d.Job.Status,
		&d.Job.PosterID,
		&d.Job.CategoryID,
		&d.Job.CategoryName,
		&d.Applicant.ID,
		&d.Applicant.FirstName,
		&d.Applicant.LastName,
		&d.Applicant.Email,
		&d.Applicant.PhoneNumber,
	)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return &d, nil
}

func collectApplicationDetails(rows pgx.Rows) ([]models.ApplicationDetails, error) {
	defer rows.Close()
	apps := []models.ApplicationDetails{}
	for rows.Next() {
		d, err := scanApplicationDetails(rows)
		if err != nil {
			log.Printf("Error scanning job application row: %v\n", err)
			return nil, err
		}
		apps = append(apps, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return apps, nil
}

// Create inserts a Pending application. The (job_id, applicant_id) unique index rejects duplicates.
func (r *JobApplicationRepo) Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	query := `
		INSERT INTO job_applications AS a (id, job_id, applicant_id, resume, cover_letter, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query,
		uuid.New(),
		req.JobID,
		req.ApplicantID,
		req.Resume,
		req.CoverLetter,
		models.ApplicationStatusPending,
	))
	if err != nil {
		switch code, constraint := pgErrorCode(err); code {
		case pgUniqueViolation:
			log.Printf("Duplicate application by %s to job %s\n", req.ApplicantID, req.JobID)
			return nil, fmt.Errorf("already applied to job: %w", storage.ErrConflict)
		case pgForeignKeyViolation:
			log.Printf("Error creating job application (foreign key %s): %v\n", constraint, err)
			return nil, fmt.Errorf("job or applicant does not exist: %w", storage.ErrNotFound)
		}
		log.Printf("Error creating job application: %v\n", err)
		return nil, fmt.Errorf("failed to create job application: %w", err)
	}

	log.Printf("Job application created successfully with ID: %s", app.ID)
	return app, nil
}

func (r *JobApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications a WHERE a.id = $1`
	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving job application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job application by ID %s: %w", id, err)
	}
	return app, nil
}

func (r *JobApplicationRepo) GetOwned(ctx context.Context, req *dto.GetJobApplicationRequest) (*models.ApplicationDetails, error) {
	query := applicationDetailsQuery + ` WHERE a.id = $1 AND a.applicant_id = $2`
	app, err := scanApplicationDetails(r.db.QueryRow(ctx, query, req.ID, req.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving job application %s for user %s: %v\n", req.ID, req.UserID, err)
		return nil, err
	}
	return app, nil
}

func (r *JobApplicationRepo) ListByApplicant(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.ApplicationDetails, error) {
	var qb queryBuilder
	qb.where("a.applicant_id = " + qb.arg(req.ApplicantID))
	if req.Status != "" {
		qb.where("a.status = " + qb.arg(req.Status))
	}
	query := qb.build(applicationDetailsQuery, "a.created_at DESC", req.Limit, req.Offset)

	rows, err := r.db.Query(ctx, query, qb.args...)
	if err != nil {
		log.Printf("Error querying job applications by applicant %s: %v\n", req.ApplicantID, err)
		return nil, fmt.Errorf("failed to list job applications by applicant: %w", err)
	}
	return collectApplicationDetails(rows)
}

// ListByPoster returns applications to any job posted by the poster. Text search is left to the caller.
func (r *JobApplicationRepo) ListByPoster(ctx context.Context, req *dto.ListEmployerApplicationsRequest) ([]models.ApplicationDetails, error) {
	var qb queryBuilder
	qb.where("j.poster_id = " + qb.arg(req.PosterID))
	if req.Status != "" {
		qb.where("a.status = " + qb.arg(req.Status))
	}
	if req.JobID != nil {
		qb.where("a.job_id = " + qb.arg(*req.JobID))
	}
	query := qb.build(applicationDetailsQuery, "a.created_at DESC", 0, 0)

	rows, err := r.db.Query(ctx, query, qb.args...)
	if err != nil {
		log.Printf("Error querying job applications for poster %s: %v\n", req.PosterID, err)
		return nil, fmt.Errorf("failed to list job applications for poster: %w", err)
	}
	return collectApplicationDetails(rows)
}

func (r *JobApplicationRepo) ListByJob(ctx context.Context, req *dto.ListJobApplicationsRequest) ([]models.ApplicationDetails, error) {
	var qb queryBuilder
	qb.where("a.job_id = " + qb.arg(req.JobID))
	query := qb.build(applicationDetailsQuery, "a.created_at DESC", req.Limit, req.Offset)

	rows, err := r.db.Query(ctx, query, qb.args...)
	if err != nil {
		log.Printf("Error querying job applications by job ID %s: %v\n", req.JobID, err)
		return nil, fmt.Errorf("failed to list job applications by job: %w", err)
	}
	return collectApplicationDetails(rows)
}

func (r *JobApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error) {
	query := `UPDATE job_applications AS a SET status = $2, updated_at = NOW() WHERE a.id = $1 RETURNING ` + applicationColumns
	app, err := scanApplication(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job application not found for status update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job application status for ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update job application status: %w", err)
	}
	return app, nil
}

func (r *JobApplicationRepo) DeleteOwned(ctx context.Context, req *dto.WithdrawApplicationRequest) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_applications WHERE id = $1 AND applicant_id = $2`, req.ID, req.UserID)
	if err != nil {
		log.Printf("Error deleting job application with ID %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete job application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Job application not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}

	log.Printf("Job application deleted successfully with ID: %s", req.ID)
	return nil
}
