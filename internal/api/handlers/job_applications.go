// internal/api/handlers/job_applications.go
package handlers

import (
	"net/http"

	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobApplicationHandler holds dependencies for the application pipeline.
type JobApplicationHandler struct {
	service   services.JobApplicationService
	validator *validator.Validate
}

// NewJobApplicationHandler creates a new JobApplicationHandler.
func NewJobApplicationHandler(service services.JobApplicationService, validate *validator.Validate) *JobApplicationHandler {
	return &JobApplicationHandler{service: service, validator: validate}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Fails if the job is archived, owned by the applicant, or an application is already in flight.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path int true "Job ID"
// @Param        application body dto.ApplyToJobRequest true "Application note"
// @Success      201 {object}  models.JobApplication
// @Failure      409 {object}  map[string]string
// @Router       /jobs/{id}/applications [post]
// @Security     BearerAuth
func (h *JobApplicationHandler) Apply(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.ApplyToJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.JobID = jobID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.Apply(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// GetApplication godoc
// @Summary      Get an application by ID
// @Description  Visible to the applicant, the job owner, and admins.
// @Tags         applications
// @Produce      json
// @Param        id path int true "Application ID"
// @Success      200 {object}  models.JobApplication
// @Failure      403 {object}  map[string]string
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) GetApplication(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.service.GetApplication(c.Request.Context(), actor, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListByJob godoc
// @Summary      List a job's applications
// @Description  Job owner or admin only.
// @Tags         applications
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {array}  models.ApplicationWithApplicant
// @Failure      403 {object}  map[string]string
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) ListByJob(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apps, err := h.service.ListByJob(c.Request.Context(), actor, jobID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListMine godoc
// @Summary      List the authenticated user's applications with their jobs
// @Tags         applications
// @Produce      json
// @Success      200 {array}  models.AppliedJob
// @Router       /applications/mine [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) ListMine(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	applied, err := h.service.ListMine(c.Request.Context(), actor)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applied)
}

// UpdateStatus godoc
// @Summary      Move an application along the pipeline
// @Description  applied -> shortlisted -> interview -> hired, with rejected reachable from any non-terminal status. Job owner or admin only.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path int true "Application ID"
// @Param        status body dto.UpdateApplicationStatusRequest true "Target status"
// @Success      200 {object}  models.JobApplication
// @Failure      409 {object}  map[string]string "Concurrent transition"
// @Failure      422 {object}  map[string]string "Transition not allowed"
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *JobApplicationHandler) UpdateStatus(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
