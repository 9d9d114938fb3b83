package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/storage"
	"job-marketplace-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type jobService struct {
	db           storage.TxBeginner
	jobRepo      storage.JobRepository
	applications JobApplicationService
	validate     *validator.Validate
}

// NewJobService creates a new instance of JobService. Applications made through the job
// are delegated to the application ledger.
func NewJobService(db storage.TxBeginner, jobRepo storage.JobRepository, applications JobApplicationService, validate *validator.Validate) JobService {
	return &jobService{
		db:           db,
		jobRepo:      jobRepo,
		applications: applications,
		validate:     validate,
	}
}

func (s *jobService) Create(ctx context.Context, poster dto.Actor, req *dto.CreateJobRequest) (*models.Job, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Location = strings.TrimSpace(req.Location)
	req.Salary = strings.TrimSpace(req.Salary)
	req.JobType = strings.TrimSpace(req.JobType)

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	if !poster.Role.CanPostJobs() {
		log.Printf("CreateJob: User %s with role %s cannot post jobs", poster.ID, poster.Role)
		return nil, fmt.Errorf("%w: role %s cannot post jobs", ErrForbidden, poster.Role)
	}

	req.PosterID = poster.ID
	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: category does not exist", ErrInvalidArgument)
		}
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

// List applies the public listing filters. ViewerID is only set for a valid bearer.
func (s *jobService) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobDetails, error) {
	req.Normalize()

	if req.Category != "" {
		id, err := uuid.Parse(req.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: category must be a valid id", ErrInvalidArgument)
		}
		req.CategoryID = &id
	}

	req.JobTypes = nil
	for _, t := range strings.Split(req.JobType, ",") {
		if t = strings.TrimSpace(t); t != "" {
			req.JobTypes = append(req.JobTypes, t)
		}
	}
	req.Search = strings.TrimSpace(req.Search)

	jobs, err := s.jobRepo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

func (s *jobService) GetByID(ctx context.Context, id uuid.UUID) (*models.JobDetails, error) {
	job, err := s.jobRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", id))
	}
	return job, nil
}

// ChangeStatus moves a job along its state machine. Only the poster or an admin may do so.
func (s *jobService) ChangeStatus(ctx context.Context, req *dto.ChangeJobStatusRequest) (*models.Job, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown job status %q", ErrInvalidArgument, req.Status)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("ChangeStatus: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txJobRepo := s.jobRepo.WithTx(tx)

	job, err := txJobRepo.GetByIDForUpdate(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.JobID))
	}
	if !canManageJob(req.Actor, job) {
		log.Printf("ChangeStatus: Forbidden attempt by user %s on job %s owned by %s", req.Actor.ID, job.ID, job.PosterID)
		return nil, fmt.Errorf("%w: only the poster can change the job status", ErrForbidden)
	}
	if !isValidJobStatusTransition(job.Status, req.Status) {
		log.Printf("ChangeStatus: Invalid transition for job %s from %s to %s", job.ID, job.Status, req.Status)
		return nil, fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, job.Status, req.Status)
	}

	updated, err := txJobRepo.UpdateStatus(ctx, job.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err, "updating job status")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("ChangeStatus: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing changes: %w", err)
	}
	return updated, nil
}

// Apply is the lightweight application path. It writes through the ledger so the job's
// applicant set and the applications can never disagree.
func (s *jobService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Job, error) {
	if _, err := s.applications.Apply(ctx, req); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("reloading job %s", req.JobID))
	}
	return job, nil
}

// SelectApplicant picks the winning applicant and moves the job to In Progress.
func (s *jobService) SelectApplicant(ctx context.Context, req *dto.SelectApplicantRequest) (*models.Job, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("SelectApplicant: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txJobRepo := s.jobRepo.WithTx(tx)

	job, err := txJobRepo.GetByIDForUpdate(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.JobID))
	}
	if !canManageJob(req.Actor, job) {
		log.Printf("SelectApplicant: Forbidden attempt by user %s on job %s owned by %s", req.Actor.ID, job.ID, job.PosterID)
		return nil, fmt.Errorf("%w: only the poster can select an applicant", ErrForbidden)
	}
	if job.Status != models.JobStatusAvailable {
		return nil, fmt.Errorf("%w: job is %s", ErrInvalidState, job.Status)
	}
	if !job.HasApplicant(req.ApplicantID) {
		return nil, fmt.Errorf("%w: user %s has not applied to job %s", ErrInvalidArgument, req.ApplicantID, job.ID)
	}

	updated, err := txJobRepo.SetSelectedApplicant(ctx, &dto.SetSelectedApplicantRequest{
		JobID:       job.ID,
		ApplicantID: req.ApplicantID,
		Status:      models.JobStatusInProgress,
	})
	if err != nil {
		return nil, mapRepoError(err, "selecting applicant")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("SelectApplicant: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing changes: %w", err)
	}

	log.Printf("Job %s moved to In Progress with applicant %s", job.ID, req.ApplicantID)
	return updated, nil
}

func (s *jobService) ListMine(ctx context.Context, req *dto.ListMyJobsRequest) ([]models.JobDetails, error) {
	req.Normalize()
	jobs, err := s.jobRepo.ListByPoster(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing jobs for poster %s", req.PosterID))
	}
	return jobs, nil
}
