package handlers

import (
	"errors"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondError maps a service error to a status code and writes the
// standard {"error": ...} body. Unexpected errors are logged and hidden.
func respondError(c *gin.Context, log logrus.FieldLogger, err error, fallback string) {
	status, msg := http.StatusInternalServerError, fallback
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		status, msg = http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, services.ErrForbidden):
		status, msg = http.StatusForbidden, "Forbidden"
	case errors.Is(err, services.ErrAlreadyApplied):
		status, msg = http.StatusBadRequest, "You have already applied for this job"
	case errors.Is(err, services.ErrJobNotFound):
		status, msg = http.StatusNotFound, "Job not found"
	case errors.Is(err, services.ErrApplicationNotFound):
		status, msg = http.StatusNotFound, "Application not found"
	case errors.Is(err, services.ErrUserNotFound):
		status, msg = http.StatusNotFound, "User not found"
	case errors.Is(err, services.ErrNotFound):
		status, msg = http.StatusNotFound, "Not found"
	case errors.Is(err, services.ErrConflict):
		status, msg = http.StatusBadRequest, "Conflict"
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.FullPath()).Error(fallback)
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": msg})
}

// bindJSON decodes and validates the body. It writes the 400 response itself
// and returns false on failure.
func bindJSON(c *gin.Context, v *validator.Validate, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	if err := v.Struct(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return false
	}
	return true
}

// principal fetches the authenticated caller, writing 401 when absent.
func principal(c *gin.Context) (models.Principal, bool) {
	p, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return models.Principal{}, false
	}
	return p, true
}

// pathID parses the named path parameter, writing 400 when malformed.
func pathID(c *gin.Context, name, label string) (primitive.ObjectID, bool) {
	oid, ok := parseObjectID(c.Param(name))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID format"})
		return oid, false
	}
	return oid, true
}
