package handlers

import (
	"errors"
	"io"
	"net/http"

	"job-marketplace-api/internal/api/middleware"
	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/services"
	"job-marketplace-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Posts a job as the authenticated user. Only employer and both roles may post.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true "Job details"
// @Success      201 {object}  models.Job "Job created successfully"
// @Failure      400 {object}  dto.ErrorResponse "Validation failed"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Role cannot post jobs"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	poster, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.service.Create(c.Request.Context(), poster, &req)
	if err != nil {
		respondError(c, err, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Public listing, newest first. exclude_own only applies when a valid bearer is sent.
// @Tags         jobs
// @Produce      json
// @Param        category    query string false "Category ID" Format(uuid)
// @Param        job_type    query string false "Comma separated job types"
// @Param        search      query string false "Case-insensitive match on title, description or location"
// @Param        status      query string false "Filter by status" Enums(Available, In Progress, Completed, Cancelled)
// @Param        exclude_own query bool   false "Hide the caller's own postings"
// @Param        limit       query int    false "Pagination limit" default(10)
// @Param        offset      query int    false "Pagination offset" default(0)
// @Success      200 {array}   models.JobDetails
// @Failure      400 {object}  dto.ErrorResponse "Invalid query parameters"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	if viewerID, err := middleware.GetUserIDFromContext(c); err == nil {
		req.ViewerID = &viewerID
	}

	jobs, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to retrieve jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListMyJobs godoc
// @Summary      List jobs posted by the authenticated user
// @Tags         jobs
// @Produce      json
// @Param        status query string false "Filter by status" Enums(Available, In Progress, Completed, Cancelled)
// @Param        limit  query int    false "Pagination limit" default(10)
// @Param        offset query int    false "Pagination offset" default(0)
// @Success      200 {array}   models.JobDetails
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Router       /jobs/mine [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	posterID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ListMyJobsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.PosterID = posterID

	jobs, err := h.service.ListMine(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to retrieve your jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id path      string true "Job ID" Format(uuid)
// @Success      200 {object}  models.JobDetails
// @Failure      400 {object}  dto.ErrorResponse "Invalid ID format"
// @Failure      404 {object}  dto.ErrorResponse "Job Not Found"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, ok := parseUUIDParam(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.service.GetByID(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err, "Failed to retrieve job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJobStatus godoc
// @Summary      Change a job's status
// @Description  Poster or admin only. Allowed: Available to Cancelled, In Progress to Completed or Cancelled.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string                     true "Job ID" Format(uuid)
// @Param        body body      dto.UpdateJobStatusRequest true "New status"
// @Success      200 {object}  models.Job
// @Failure      400 {object}  dto.ErrorResponse "Unknown status"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      404 {object}  dto.ErrorResponse "Job Not Found"
// @Failure      409 {object}  dto.ErrorResponse "Invalid state transition"
// @Router       /jobs/{id}/status [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	jobID, ok := parseUUIDParam(c, "id", "job")
	if !ok {
		return
	}

	var body dto.UpdateJobStatusRequest
	if !bindJSON(c, &body) {
		return
	}

	job, err := h.service.ChangeStatus(c.Request.Context(), &dto.ChangeJobStatusRequest{
		JobID:  jobID,
		Actor:  actor,
		Status: models.JobStatus(body.Status),
	})
	if err != nil {
		respondError(c, err, "Failed to update job status")
		return
	}
	c.JSON(http.StatusOK, job)
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Records an application for the caller. The body is optional.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string                true  "Job ID" Format(uuid)
// @Param        body body      dto.ApplyToJobRequest false "Resume and cover letter"
// @Success      200 {object}  models.Job "Job with the updated applicant set"
// @Failure      403 {object}  dto.ErrorResponse "Cannot apply to own job"
// @Failure      404 {object}  dto.ErrorResponse "Job Not Found"
// @Failure      409 {object}  dto.ErrorResponse "Already applied or job not available"
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *JobHandler) ApplyToJob(c *gin.Context) {
	applicantID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	jobID, ok := parseUUIDParam(c, "id", "job")
	if !ok {
		return
	}

	var req dto.ApplyToJobRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	req.JobID = jobID
	req.ApplicantID = applicantID

	job, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to apply to job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// SelectApplicant godoc
// @Summary      Select an applicant
// @Description  Poster or admin only. Moves the job to In Progress.
// @Tags         jobs
// @Produce      json
// @Param        id          path      string true "Job ID" Format(uuid)
// @Param        applicantId path      string true "Applicant user ID" Format(uuid)
// @Success      200 {object}  models.Job
// @Failure      400 {object}  dto.ErrorResponse "User has not applied"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      404 {object}  dto.ErrorResponse "Job Not Found"
// @Failure      409 {object}  dto.ErrorResponse "Job is not Available"
// @Router       /jobs/{id}/select/{applicantId} [patch]
// @Security     BearerAuth
func (h *JobHandler) SelectApplicant(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	jobID, ok := parseUUIDParam(c, "id", "job")
	if !ok {
		return
	}
	applicantID, ok := parseUUIDParam(c, "applicantId", "applicant")
	if !ok {
		return
	}

	job, err := h.service.SelectApplicant(c.Request.Context(), &dto.SelectApplicantRequest{
		JobID:       jobID,
		ApplicantID: applicantID,
		Actor:       actor,
	})
	if err != nil {
		respondError(c, err, "Failed to select applicant")
		return
	}
	c.JSON(http.StatusOK, job)
}
