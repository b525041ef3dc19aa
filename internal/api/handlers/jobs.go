package handlers

import (
	"net/http"

	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
	log       logrus.FieldLogger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate, log logrus.FieldLogger) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
		log:       log,
	}
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Filter, sort and paginate job postings. Public.
// @Tags         jobs
// @Produce      json
// @Param        search query string false "Text search over title, company, description and skills"
// @Param        location query string false "Location substring"
// @Param        type query string false "Job type"
// @Param        level query string false "Experience level"
// @Param        category query string false "Category"
// @Param        remote query bool false "Only remote locations"
// @Param        salaryMin query int false "Minimum salary"
// @Param        salaryMax query int false "Maximum salary"
// @Param        recentlyPosted query bool false "Posted in the last 7 days"
// @Param        postedDate query string false "today, 3days, week or month"
// @Param        sort query string false "recent, oldest, salary_high, salary_low, alphabetical, relevant"
// @Param        page query int false "Page" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200 {object}  dto.JobListResponse
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      500 {object}  dto.ErrorResponse
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	bindLenientListQuery(c, &req)
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	resp, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve jobs")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  The acting user becomes the owner. A first-time caller is created as a recruiter.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  dto.JobCreatedResponse
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      401 {object}  dto.ErrorResponse
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      500 {object}  dto.ErrorResponse
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), p, &req)
	if err != nil {
		respondError(c, h.log, err, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, dto.JobCreatedResponse{Message: "Job created successfully", Data: job})
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Description  Every call counts as one view.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID"
// @Success      200 {object}  models.Job
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      500 {object}  dto.ErrorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Partial update of descriptive fields. Owner only.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID"
// @Param        job body     dto.UpdateJobRequest true "Fields to change"
// @Success      200 {object}  models.Job
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      401 {object}  dto.ErrorResponse
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      500 {object}  dto.ErrorResponse
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), p, id, &req)
	if err != nil {
		respondError(c, h.log, err, "Failed to update job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID"
// @Success      200 {object}  dto.MessageResponse
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      401 {object}  dto.ErrorResponse
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      500 {object}  dto.ErrorResponse
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), p, id); err != nil {
		respondError(c, h.log, err, "Failed to delete job")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted successfully"})
}

// Dashboard godoc
// @Summary      List the caller's own job postings
// @Description  Empty for a caller not seen before.
// @Tags         dashboard
// @Produce      json
// @Success      200 {array}   models.Job
// @Failure      401 {object}  dto.ErrorResponse
// @Failure      500 {object}  dto.ErrorResponse
// @Router       /dashboard [get]
// @Security     BearerAuth
func (h *JobHandler) Dashboard(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	jobs, err := h.service.Dashboard(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve dashboard")
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}
