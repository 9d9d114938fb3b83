package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/storage"
	"job-marketplace-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
)

type jobApplicationService struct {
	db       storage.TxBeginner
	appRepo  storage.JobApplicationRepository
	jobRepo  storage.JobRepository
	validate *validator.Validate
}

// NewJobApplicationService creates a new instance of JobApplicationService.
func NewJobApplicationService(db storage.TxBeginner, appRepo storage.JobApplicationRepository, jobRepo storage.JobRepository, validate *validator.Validate) JobApplicationService {
	return &jobApplicationService{
		db:       db,
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		validate: validate,
	}
}

// Apply records an application. The job row stays locked until commit so a concurrent
// status change or selection cannot interleave.
func (s *jobApplicationService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.JobApplication, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Apply: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txJobRepo := s.jobRepo.WithTx(tx)
	txAppRepo := s.appRepo.WithTx(tx)

	job, err := txJobRepo.GetByIDForUpdate(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}

	if job.Status != models.JobStatusAvailable {
		log.Printf("Apply: Attempt to apply to non-available job %s (Status: %s)", job.ID, job.Status)
		return nil, fmt.Errorf("%w: job is not available for applications", ErrInvalidState)
	}
	if job.PosterID == req.ApplicantID {
		return nil, fmt.Errorf("%w: poster cannot apply to their own job", ErrForbidden)
	}

	application, err := txAppRepo.Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
		Resume:      strings.TrimSpace(req.Resume),
		CoverLetter: strings.TrimSpace(req.CoverLetter),
	})
	if err != nil {
		return nil, mapRepoError(err, "creating application")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Apply: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing changes: %w", err)
	}

	log.Printf("User %s applied to job %s (application %s)", req.ApplicantID, req.JobID, application.ID)
	return application, nil
}

func (s *jobApplicationService) ListForUser(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.ApplicationDetails, error) {
	req.Normalize()
	apps, err := s.appRepo.ListByApplicant(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for user %s", req.ApplicantID))
	}
	return apps, nil
}

// GetByID only resolves applications owned by the caller; anything else is NotFound.
func (s *jobApplicationService) GetByID(ctx context.Context, req *dto.GetJobApplicationRequest) (*models.ApplicationDetails, error) {
	app, err := s.appRepo.GetOwned(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}
	return app, nil
}

// Withdraw deletes the caller's application, which also drops them from the job's applicant set.
// The selected applicant cannot withdraw.
func (s *jobApplicationService) Withdraw(ctx context.Context, req *dto.WithdrawApplicationRequest) error {
	app, err := s.appRepo.GetOwned(ctx, &dto.GetJobApplicationRequest{ID: req.ID, UserID: req.UserID})
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching application %s for withdrawal", req.ID))
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Withdraw: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	job, err := s.jobRepo.WithTx(tx).GetByIDForUpdate(ctx, app.JobID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("locking job %s for withdrawal", app.JobID))
	}
	if job.SelectedApplicantID != nil && *job.SelectedApplicantID == req.UserID {
		log.Printf("Withdraw: Selected applicant %s tried to withdraw from job %s", req.UserID, job.ID)
		return fmt.Errorf("%w: selected applicant cannot withdraw", ErrInvalidState)
	}

	if err := s.appRepo.WithTx(tx).DeleteOwned(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting application %s", req.ID))
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Withdraw: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing changes: %w", err)
	}
	return nil
}

// UpdateStatus lets the job's poster move an application to any review status.
func (s *jobApplicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown application status %q", ErrInvalidArgument, req.Status)
	}

	app, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching associated job %s", app.JobID))
	}
	if job.PosterID != req.UserID {
		log.Printf("UpdateStatus: Forbidden attempt by user %s on application %s (job poster %s)", req.UserID, req.ID, job.PosterID)
		return nil, fmt.Errorf("%w: only the job poster can review applications", ErrForbidden)
	}

	updated, err := s.appRepo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err, "updating application status")
	}
	return updated, nil
}

// ListForEmployer filters on poster, status and job in the query; the free-text search
// runs here with Unicode case folding over the applicant's name and email.
func (s *jobApplicationService) ListForEmployer(ctx context.Context, req *dto.ListEmployerApplicationsRequest) ([]models.ApplicationDetails, error) {
	apps, err := s.appRepo.ListByPoster(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for poster %s", req.PosterID))
	}

	search := strings.TrimSpace(req.Search)
	if search == "" {
		return apps, nil
	}

	fold := cases.Fold()
	needle := fold.String(search)
	filtered := make([]models.ApplicationDetails, 0, len(apps))
	for _, app := range apps {
		name := fold.String(app.Applicant.FirstName + " " + app.Applicant.LastName)
		email := ""
		if app.Applicant.Email != nil {
			email = fold.String(*app.Applicant.Email)
		}
		if strings.Contains(name, needle) || strings.Contains(email, needle) {
			filtered = append(filtered, app)
		}
	}
	return filtered, nil
}

func (s *jobApplicationService) ListForJob(ctx context.Context, req *dto.ListJobApplicationsRequest) ([]models.ApplicationDetails, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.JobID))
	}
	if job.PosterID != req.Actor.ID {
		log.Printf("ListForJob: Forbidden attempt by user %s on job %s", req.Actor.ID, job.ID)
		return nil, fmt.Errorf("%w: only the job poster can list its applications", ErrForbidden)
	}

	req.Normalize()
	apps, err := s.appRepo.ListByJob(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for job %s", req.JobID))
	}
	return apps, nil
}
