package handlers

import (
	"net/http"

	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ApplicationHandler holds dependencies for job application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
	log       logrus.FieldLogger
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate, log logrus.FieldLogger) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
		log:       log,
	}
}

// SubmitApplication godoc
// @Summary      Apply to a job
// @Description  Job seekers only. One application per job and applicant. The company and the applicant are notified by mail.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body dto.SubmitApplicationRequest true "Application"
// @Success      201 {object}  dto.ApplicationResponse
// @Failure      400 {object}  dto.ErrorResponse "Invalid input or already applied"
// @Failure      401 {object}  dto.ErrorResponse
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      500 {object}  dto.ErrorResponse
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), p, &req)
	if err != nil {
		respondError(c, h.log, err, "Failed to submit application")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListApplications godoc
// @Summary      List applications
// @Description  Job seekers see their own, recruiters see those for jobs they own, admins see all.
// @Tags         applications
// @Produce      json
// @Param        jobId query string false "Only applications for this job"
// @Success      200 {array}   dto.ApplicationResponse
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      401 {object}  dto.ErrorResponse
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      500 {object}  dto.ErrorResponse
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.ListApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	apps, err := h.service.List(c.Request.Context(), p, &req)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve applications")
		return
	}
	if apps == nil {
		apps = []dto.ApplicationResponse{}
	}
	c.JSON(http.StatusOK, apps)
}

// GetApplicationByID godoc
// @Summary      Get an application
// @Description  Visible to the applicant, the owner of the job, and admins.
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Application ID"
// @Success      200 {object}  dto.ApplicationResponse
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      401 {object}  dto.ErrorResponse
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      500 {object}  dto.ErrorResponse
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "application")
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve application")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateApplicationStatus godoc
// @Summary      Change an application's status
// @Description  Owner of the job only. Any status may follow any other.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID"
// @Param        status body  dto.UpdateApplicationStatusRequest true "New status"
// @Success      200 {object}  dto.ApplicationResponse
// @Failure      400 {object}  dto.ErrorResponse
// @Failure      401 {object}  dto.ErrorResponse
// @Failure      403 {object}  dto.ErrorResponse
// @Failure      404 {object}  dto.ErrorResponse
// @Failure      500 {object}  dto.ErrorResponse
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "application")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), p, id, req.Status)
	if err != nil {
		respondError(c, h.log, err, "Failed to update application")
		return
	}
	c.JSON(http.StatusOK, resp)
}
