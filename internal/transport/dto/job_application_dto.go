package dto

import (
	"job-marketplace-api/internal/models"

	"github.com/google/uuid"
)

// ApplyToJobRequest carries an application. The body is optional on POST /jobs/:id/apply.
type ApplyToJobRequest struct {
	JobID       uuid.UUID `json:"-"` // From path
	ApplicantID uuid.UUID `json:"-"` // Set from user context
	Resume      string    `json:"resume" validate:"omitempty,max=2000"`
	CoverLetter string    `json:"cover_letter" validate:"omitempty,max=2000"`
}

// CreateJobApplicationRequest is the repository insert performed by Apply.
type CreateJobApplicationRequest struct {
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Resume      string
	CoverLetter string
}

type GetJobApplicationRequest struct {
	ID     uuid.UUID // From path
	UserID uuid.UUID // Set from user context for the ownership predicate
}

type WithdrawApplicationRequest struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// ListMyApplicationsRequest lists the caller's own applications.
type ListMyApplicationsRequest struct {
	ApplicantID uuid.UUID `form:"-"`
	Status      string    `form:"status" validate:"omitempty,oneof=Pending Reviewed Accepted Rejected"`
	Pagination
}

// ListEmployerApplicationsRequest lists applications to jobs posted by the caller.
type ListEmployerApplicationsRequest struct {
	PosterID uuid.UUID  `form:"-"`
	Status   string     `form:"status" validate:"omitempty,oneof=Pending Reviewed Accepted Rejected"`
	Job      string     `form:"job_id" validate:"omitempty,uuid"`
	Search   string     `form:"search" validate:"omitempty,max=100"`
	JobID    *uuid.UUID `form:"-"`
}

// ListJobApplicationsRequest lists the applications of a single job.
type ListJobApplicationsRequest struct {
	JobID uuid.UUID `form:"-"`
	Actor Actor     `form:"-"`
	Pagination
}

// UpdateApplicationStatusBody is the body of PUT /applications/:id/status.
type UpdateApplicationStatusBody struct {
	Status string `json:"status" validate:"required"`
}

type UpdateApplicationStatusRequest struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Status models.ApplicationStatus
}
