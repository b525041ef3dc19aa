package dto

import (
	"jobboard-api/internal/models"
)

// UpdateUserRequest defines the structure for updating the acting user.
// Role may only move between job_seeker and recruiter.
type UpdateUserRequest struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Role     *models.Role     `json:"role,omitempty" validate:"omitempty,oneof=job_seeker recruiter"`
	Profile  *models.Profile  `json:"profile,omitempty"`
	Company  *models.Company  `json:"company,omitempty"`
	Settings *models.Settings `json:"settings,omitempty"`
}

// IsEmpty reports whether no field was supplied.
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Role == nil && r.Profile == nil && r.Company == nil && r.Settings == nil
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse is returned by operations without a record to return.
type MessageResponse struct {
	Message string `json:"message"`
}
