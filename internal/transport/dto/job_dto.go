package dto

import (
	"time"

	"job-marketplace-api/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description string     `json:"description" validate:"required,max=300"`
	Location    string     `json:"location" validate:"required,max=200"`
	Salary      string     `json:"salary" validate:"required,max=100"`
	JobType     string     `json:"job_type" validate:"required,max=50"`
	Deadline    *time.Time `json:"deadline" validate:"required"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	PosterID    uuid.UUID  `json:"-"` // Set internally by handler from auth context
}

// ListJobsRequest defines the public job listing filters.
type ListJobsRequest struct {
	Category   string `form:"category" validate:"omitempty,uuid"`
	JobType    string `form:"job_type" validate:"omitempty,max=200"` // comma separated
	Search     string `form:"search" validate:"omitempty,max=100"`
	Status     string `form:"status" validate:"omitempty,oneof=Available 'In Progress' Completed Cancelled"`
	ExcludeOwn bool   `form:"exclude_own"`
	Pagination

	CategoryID *uuid.UUID `form:"-"`
	JobTypes   []string   `form:"-"`
	ViewerID   *uuid.UUID `form:"-"` // Set by the handler when a valid bearer is present
}

// ListMyJobsRequest lists the jobs posted by the caller.
type ListMyJobsRequest struct {
	PosterID uuid.UUID `form:"-"`
	Status   string    `form:"status" validate:"omitempty,oneof=Available 'In Progress' Completed Cancelled"`
	Pagination
}

// UpdateJobStatusRequest is the body of PATCH /jobs/:id/status.
type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ChangeJobStatusRequest is the service-level status change command.
type ChangeJobStatusRequest struct {
	JobID  uuid.UUID
	Actor  Actor
	Status models.JobStatus
}

type SelectApplicantRequest struct {
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Actor       Actor
}

// SetSelectedApplicantRequest is the repository update performed by selection.
type SetSelectedApplicantRequest struct {
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Status      models.JobStatus
}
