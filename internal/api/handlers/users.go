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

// UserHandler serves the acting user's own record.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
	log       logrus.FieldLogger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{service: service, validator: validate, log: log}
}

// GetMe godoc
// @Summary      Get the acting user
// @Description  Created as a job seeker on first call.
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) GetMe(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.service.GetMe(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary      Update the acting user
// @Description  Role may be job_seeker or recruiter.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body      dto.UpdateUserRequest true "Fields to change"
// @Success      200  {object}  models.User
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /users/me [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateMe(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, err := h.service.UpdateMe(c.Request.Context(), p, &req)
	if err != nil {
		respondError(c, h.log, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListSavedJobs godoc
// @Summary      List saved jobs
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.Job
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /users/me/saved-jobs [get]
// @Security     BearerAuth
func (h *UserHandler) ListSavedJobs(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	jobs, err := h.service.ListSavedJobs(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.log, err, "Failed to retrieve saved jobs")
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// SaveJob godoc
// @Summary      Save a job
// @Tags         users
// @Produce      json
// @Param        jobId path     string true "Job ID"
// @Success      200  {object}  models.User
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /users/me/saved-jobs/{jobId} [put]
// @Security     BearerAuth
func (h *UserHandler) SaveJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "jobId", "job")
	if !ok {
		return
	}

	user, err := h.service.SaveJob(c.Request.Context(), p, jobID)
	if err != nil {
		respondError(c, h.log, err, "Failed to save job")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UnsaveJob godoc
// @Summary      Remove a saved job
// @Tags         users
// @Produce      json
// @Param        jobId path     string true "Job ID"
// @Success      200  {object}  models.User
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /users/me/saved-jobs/{jobId} [delete]
// @Security     BearerAuth
func (h *UserHandler) UnsaveJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "jobId", "job")
	if !ok {
		return
	}

	user, err := h.service.UnsaveJob(c.Request.Context(), p, jobID)
	if err != nil {
		respondError(c, h.log, err, "Failed to remove saved job")
		return
	}
	c.JSON(http.StatusOK, user)
}
