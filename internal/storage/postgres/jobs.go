package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/storage"
	"job-marketplace-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// applicantsColumn derives a job's applicant set from the applications ledger.
const applicantsColumn = `COALESCE((SELECT array_agg(a.applicant_id ORDER BY a.created_at) FROM job_applications a WHERE a.job_id = j.id), '{}')`

const jobColumns = `j.id, j.title, j.description, j.location, j.salary, j.job_type, j.deadline,
	j.category_id, j.poster_id, j.status, j.selected_applicant_id, ` + applicantsColumn + `,
	j.created_at, j.updated_at`

const jobDetailsQuery = `SELECT ` + jobColumns + `, c.name, u.id, u.first_name, u.last_name, u.email, u.phone_number
	FROM jobs j
	LEFT JOIN categories c ON c.id = j.category_id
	JOIN users u ON u.id = j.poster_id`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db storage.Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db storage.Querier) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func jobScanTargets(j *models.Job) []any {
	return []any{
		&j.ID,
		&j.Title,
		&j.Description,
		&j.Location,
		&j.Salary,
		&j.JobType,
		&j.Deadline,
		&j.CategoryID,
		&j.PosterID,
		&j.Status,
		&j.SelectedApplicantID,
		&j.Applicants,
		&j.CreatedAt,
		&j.UpdatedAt,
	}
}

func scanJob(row scanner) (*models.Job, error) {
	var j models.Job
	if err := row.Scan(jobScanTargets(&j)...); err != nil {
		return nil, err
	}
	return &j, nil
}

func scanJobDetails(row scanner) (*models.JobDetails, error) {
	var d models.JobDetails
	targets := append(jobScanTargets(&d.Job),
		&d.CategoryName,
		&d.Poster.ID,
		&d.Poster.FirstName,
		&d.Poster.LastName,
		&d.Poster.Email,
		&d.Poster.PhoneNumber,
	)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return &d, nil
}

func collectJobDetails(rows pgx.Rows) ([]models.JobDetails, error) {
	defer rows.Close()
	jobs := []models.JobDetails{}
	for rows.Next() {
		d, err := scanJobDetails(rows)
		if err != nil {
			log.Printf("Error scanning job row: %v\n", err)
			return nil, err
		}
		jobs = append(jobs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Create saves a new job posting in the Available state.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	query := `
		INSERT INTO jobs AS j (id, title, description, location, salary, job_type, deadline, category_id, poster_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + jobColumns

	job, err := scanJob(r.db.QueryRow(ctx, query,
		uuid.New(),
		strings.TrimSpace(req.Title),
		strings.TrimSpace(req.Description),
		strings.TrimSpace(req.Location),
		strings.TrimSpace(req.Salary),
		strings.TrimSpace(req.JobType),
		*req.Deadline,
		req.CategoryID,
		req.PosterID,
		models.JobStatusAvailable,
	))
	if err != nil {
		if code, constraint := pgErrorCode(err); code == pgForeignKeyViolation {
			log.Printf("Error creating job: foreign key violation on %s: %v\n", constraint, err)
			return nil, fmt.Errorf("referenced category or poster does not exist: %w", storage.ErrNotFound)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", job.ID)
	return job, nil
}

func (r *JobRepo) getOne(ctx context.Context, id uuid.UUID, lock bool) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	if lock {
		query += ` FOR UPDATE OF j`
	}
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting job by ID %s: %v\n", id, err)
		return nil, err
	}
	return job, nil
}

func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	return r.getOne(ctx, id, false)
}

func (r *JobRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	return r.getOne(ctx, id, true)
}

func (r *JobRepo) GetDetails(ctx context.Context, id uuid.UUID) (*models.JobDetails, error) {
	job, err := scanJobDetails(r.db.QueryRow(ctx, jobDetailsQuery+` WHERE j.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting job details %s: %v\n", id, err)
		return nil, err
	}
	return job, nil
}

// List returns jobs matching the public listing filters, newest first.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobDetails, error) {
	var qb queryBuilder
	if req.CategoryID != nil {
		qb.where("j.category_id = " + qb.arg(*req.CategoryID))
	}
	if len(req.JobTypes) > 0 {
		qb.where("j.job_type = ANY(" + qb.arg(req.JobTypes) + ")")
	}
	if req.Search != "" {
		p := qb.arg("%" + escapeLike(req.Search) + "%")
		qb.where(fmt.Sprintf(`(j.title ILIKE %[1]s ESCAPE '\' OR j.description ILIKE %[1]s ESCAPE '\' OR j.location ILIKE %[1]s ESCAPE '\')`, p))
	}
	if req.Status != "" {
		qb.where("j.status = " + qb.arg(req.Status))
	}
	if req.ExcludeOwn && req.ViewerID != nil {
		qb.where("j.poster_id <> " + qb.arg(*req.ViewerID))
	}

	query := qb.build(jobDetailsQuery, "j.created_at DESC", req.Limit, req.Offset)
	rows, err := r.db.Query(ctx, query, qb.args...)
	if err != nil {
		log.Printf("Error querying jobs: %v\n", err)
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return collectJobDetails(rows)
}

func (r *JobRepo) ListByPoster(ctx context.Context, req *dto.ListMyJobsRequest) ([]models.JobDetails, error) {
	var qb queryBuilder
	qb.where("j.poster_id = " + qb.arg(req.PosterID))
	if req.Status != "" {
		qb.where("j.status = " + qb.arg(req.Status))
	}

	query := qb.build(jobDetailsQuery, "j.created_at DESC", req.Limit, req.Offset)
	rows, err := r.db.Query(ctx, query, qb.args...)
	if err != nil {
		log.Printf("Error querying jobs by poster %s: %v\n", req.PosterID, err)
		return nil, fmt.Errorf("failed to list jobs by poster: %w", err)
	}
	return collectJobDetails(rows)
}

func (r *JobRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	query := `UPDATE jobs AS j SET status = $2, updated_at = NOW() WHERE j.id = $1 RETURNING ` + jobColumns
	job, err := scanJob(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating status of job %s: %v\n", id, err)
		return nil, err
	}
	log.Printf("Job %s status set to %s", id, status)
	return job, nil
}

func (r *JobRepo) SetSelectedApplicant(ctx context.Context, req *dto.SetSelectedApplicantRequest) (*models.Job, error) {
	query := `
		UPDATE jobs AS j SET selected_applicant_id = $2, status = $3, updated_at = NOW()
		WHERE j.id = $1
		RETURNING ` + jobColumns
	job, err := scanJob(r.db.QueryRow(ctx, query, req.JobID, req.ApplicantID, req.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return nil, fmt.Errorf("selected applicant does not exist: %w", storage.ErrNotFound)
		}
		log.Printf("Error selecting applicant for job %s: %v\n", req.JobID, err)
		return nil, err
	}
	log.Printf("Job %s selected applicant %s", req.JobID, req.ApplicantID)
	return job, nil
}
