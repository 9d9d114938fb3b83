package handlers

import (
	"net/http"

	"job-marketplace-api/internal/api/middleware"
	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/services"
	"job-marketplace-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobApplicationHandler holds dependencies for the application ledger endpoints.
type JobApplicationHandler struct {
	service   services.JobApplicationService
	validator *validator.Validate
}

// NewJobApplicationHandler creates a new JobApplicationHandler.
func NewJobApplicationHandler(service services.JobApplicationService, validate *validator.Validate) *JobApplicationHandler {
	return &JobApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// ListMyApplications godoc
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Param        status query string false "Filter by status" Enums(Pending, Reviewed, Accepted, Rejected)
// @Param        limit  query int    false "Pagination limit" default(10)
// @Param        offset query int    false "Pagination offset" default(0)
// @Success      200 {array}   models.ApplicationDetails
// @Failure      400 {object}  dto.ErrorResponse "Invalid query parameters"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Router       /applications [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) ListMyApplications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ListMyApplicationsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.ApplicantID = userID

	apps, err := h.service.ListForUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to retrieve applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListEmployerApplications godoc
// @Summary      List applications to the caller's jobs
// @Tags         applications
// @Produce      json
// @Param        status query string false "Filter by status" Enums(Pending, Reviewed, Accepted, Rejected)
// @Param        job_id query string false "Filter by job" Format(uuid)
// @Param        search query string false "Match applicant name or email"
// @Success      200 {array}   models.ApplicationDetails
// @Failure      400 {object}  dto.ErrorResponse "Invalid query parameters"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Router       /applications/employer [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) ListEmployerApplications(c *gin.Context) {
	posterID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ListEmployerApplicationsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.PosterID = posterID
	if req.Job != "" {
		// Already checked by the uuid tag.
		jobID := uuid.MustParse(req.Job)
		req.JobID = &jobID
	}

	apps, err := h.service.ListForEmployer(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to retrieve applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListApplicationsForJob godoc
// @Summary      List the applications of one job
// @Description  Job poster only.
// @Tags         applications
// @Produce      json
// @Param        id     path  string true  "Job ID" Format(uuid)
// @Param        limit  query int    false "Pagination limit" default(10)
// @Param        offset query int    false "Pagination offset" default(0)
// @Success      200 {array}   models.ApplicationDetails
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      404 {object}  dto.ErrorResponse "Job Not Found"
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) ListApplicationsForJob(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	jobID, ok := parseUUIDParam(c, "id", "job")
	if !ok {
		return
	}

	var req dto.ListJobApplicationsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.JobID = jobID
	req.Actor = actor

	apps, err := h.service.ListForJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to retrieve applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GetApplicationByID godoc
// @Summary      Get one of the caller's applications
// @Tags         applications
// @Produce      json
// @Param        id path      string true "Application ID" Format(uuid)
// @Success      200 {object}  models.ApplicationDetails
// @Failure      404 {object}  dto.ErrorResponse "Application Not Found"
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) GetApplicationByID(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	appID, ok := parseUUIDParam(c, "id", "application")
	if !ok {
		return
	}

	app, err := h.service.GetByID(c.Request.Context(), &dto.GetJobApplicationRequest{ID: appID, UserID: userID})
	if err != nil {
		respondError(c, err, "Failed to retrieve application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateApplicationStatus godoc
// @Summary      Review an application
// @Description  Job poster only. Any status can be set from any other.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id   path      string                          true "Application ID" Format(uuid)
// @Param        body body      dto.UpdateApplicationStatusBody true "New status"
// @Success      200 {object}  models.JobApplication
// @Failure      400 {object}  dto.ErrorResponse "Unknown status"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      404 {object}  dto.ErrorResponse "Application Not Found"
// @Router       /applications/{id}/status [put]
// @Security     BearerAuth
func (h *JobApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	appID, ok := parseUUIDParam(c, "id", "application")
	if !ok {
		return
	}

	var body dto.UpdateApplicationStatusBody
	if !bindJSON(c, &body) {
		return
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), &dto.UpdateApplicationStatusRequest{
		ID:     appID,
		UserID: userID,
		Status: models.ApplicationStatus(body.Status),
	})
	if err != nil {
		respondError(c, err, "Failed to update application status")
		return
	}
	c.JSON(http.StatusOK, app)
}

// WithdrawApplication godoc
// @Summary      Withdraw an application
// @Description  Deletes the caller's application. The selected applicant cannot withdraw.
// @Tags         applications
// @Param        id path string true "Application ID" Format(uuid)
// @Success      204 "Application withdrawn"
// @Failure      404 {object}  dto.ErrorResponse "Application Not Found"
// @Failure      409 {object}  dto.ErrorResponse "Selected applicant cannot withdraw"
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *JobApplicationHandler) WithdrawApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	appID, ok := parseUUIDParam(c, "id", "application")
	if !ok {
		return
	}

	if err := h.service.Withdraw(c.Request.Context(), &dto.WithdrawApplicationRequest{ID: appID, UserID: userID}); err != nil {
		respondError(c, err, "Failed to withdraw application")
		return
	}
	c.Status(http.StatusNoContent)
}
