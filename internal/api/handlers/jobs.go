// internal/api/handlers/jobs.go
package handlers

import (
	"net/http"

	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds dependencies for job posting and bookmark operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  Recruiters only.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body dto.CreateJobRequest true "Job details"
// @Success      201 {object}  models.Job
// @Failure      403 {object}  map[string]string
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GetJob godoc
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object}  models.Job
// @Failure      404 {object}  map[string]string
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Owner or admin only.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path int true "Job ID"
// @Param        job body dto.UpdateJobRequest true "Fields to update"
// @Success      200 {object}  models.Job
// @Failure      403 {object}  map[string]string
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Param        id path int true "Job ID"
// @Success      204
// @Failure      403 {object}  map[string]string
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ArchiveJob godoc
// @Summary      Archive a job posting
// @Description  Archived jobs leave search and stop accepting applications.
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object}  models.Job
// @Failure      409 {object}  map[string]string "Already archived"
// @Router       /jobs/{id}/archive [put]
// @Security     BearerAuth
func (h *JobHandler) ArchiveJob(c *gin.Context) {
	h.setArchived(c, true)
}

// UnarchiveJob godoc
// @Summary      Restore an archived job posting
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object}  models.Job
// @Failure      409 {object}  map[string]string "Not archived"
// @Router       /jobs/{id}/archive [delete]
// @Security     BearerAuth
func (h *JobHandler) UnarchiveJob(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *JobHandler) setArchived(c *gin.Context, archived bool) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.service.SetArchived(c.Request.Context(), actor, id, archived)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListJobs godoc
// @Summary      List or search active job postings
// @Description  Filters are optional; with none set this is a plain active listing.
// @Tags         jobs
// @Produce      json
// @Param        q                query string false "Free-text query over title, company and description"
// @Param        location         query string false "Location filter"
// @Param        job_type         query string false "Job type filter"
// @Param        experience_level query string false "Experience level filter"
// @Param        skill            query string false "Required skill"
// @Param        limit            query int    false "Page size"   default(20)
// @Param        offset           query int    false "Page offset" default(0)
// @Success      200 {array}  models.Job
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.SearchJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, err := h.service.SearchJobs(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListMyJobs godoc
// @Summary      List the authenticated recruiter's jobs with applicant counts
// @Tags         jobs
// @Produce      json
// @Success      200 {array}  models.JobWithApplicants
// @Router       /jobs/mine [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	jobs, err := h.service.ListMyJobs(c.Request.Context(), actor)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// SaveJob godoc
// @Summary      Bookmark a job
// @Description  Saving an already-saved job is a no-op.
// @Tags         jobs
// @Param        id path int true "Job ID"
// @Success      204
// @Router       /jobs/{id}/save [put]
// @Security     BearerAuth
func (h *JobHandler) SaveJob(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SaveJob(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnsaveJob godoc
// @Summary      Remove a job bookmark
// @Tags         jobs
// @Param        id path int true "Job ID"
// @Success      204
// @Router       /jobs/{id}/save [delete]
// @Security     BearerAuth
func (h *JobHandler) UnsaveJob(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UnsaveJob(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSavedJobs godoc
// @Summary      List the authenticated user's bookmarked jobs
// @Tags         jobs
// @Produce      json
// @Success      200 {array}  models.SavedJobWithJob
// @Router       /jobs/saved [get]
// @Security     BearerAuth
func (h *JobHandler) ListSavedJobs(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	saved, err := h.service.ListSavedJobs(c.Request.Context(), actor)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
