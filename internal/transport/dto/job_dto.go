package dto

import (
	"time"

	"jobboard-api/internal/models"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	JobTitle        string     `json:"jobTitle" validate:"required,max=200"`
	CompanyName     string     `json:"companyName" validate:"required,max=200"`
	CompanyLogo     string     `json:"companyLogo" validate:"omitempty,max=2048"`
	JobDescription  string     `json:"jobDescription" validate:"required"`
	JobType         string     `json:"jobType" validate:"required"`
	ExperienceLevel string     `json:"experienceLevel" validate:"required"`
	Category        string     `json:"category" validate:"required"`
	RequiredSkills  []string   `json:"requiredSkills" validate:"omitempty,dive,required"`
	Location        string     `json:"location" validate:"required"`
	SalaryMin       *int       `json:"salaryMin" validate:"required,gte=0"`
	SalaryMax       *int       `json:"salaryMax" validate:"required,gte=0"`
	Deadline        *time.Time `json:"deadline"`
	IsTestRequired  bool       `json:"isTestRequired"`
	Openings        int        `json:"openings" validate:"omitempty,gte=0"`
	ContactEmail    string     `json:"contactEmail" validate:"required,email"`
}

// UpdateJobRequest is a partial update of the descriptive fields. Ownership,
// applications and views are not client-writable.
type UpdateJobRequest struct {
	JobTitle        *string    `json:"jobTitle,omitempty" validate:"omitempty,min=1,max=200"`
	CompanyName     *string    `json:"companyName,omitempty" validate:"omitempty,min=1,max=200"`
	CompanyLogo     *string    `json:"companyLogo,omitempty" validate:"omitempty,max=2048"`
	JobDescription  *string    `json:"jobDescription,omitempty" validate:"omitempty,min=1"`
	JobType         *string    `json:"jobType,omitempty" validate:"omitempty,min=1"`
	ExperienceLevel *string    `json:"experienceLevel,omitempty" validate:"omitempty,min=1"`
	Category        *string    `json:"category,omitempty" validate:"omitempty,min=1"`
	RequiredSkills  []string   `json:"requiredSkills,omitempty" validate:"omitempty,dive,required"`
	Location        *string    `json:"location,omitempty" validate:"omitempty,min=1"`
	SalaryMin       *int       `json:"salaryMin,omitempty" validate:"omitempty,gte=0"`
	SalaryMax       *int       `json:"salaryMax,omitempty" validate:"omitempty,gte=0"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	IsTestRequired  *bool      `json:"isTestRequired,omitempty"`
	Openings        *int       `json:"openings,omitempty" validate:"omitempty,gte=0"`
	ContactEmail    *string    `json:"contactEmail,omitempty" validate:"omitempty,email"`
}

// IsEmpty reports whether no field was supplied.
func (r *UpdateJobRequest) IsEmpty() bool {
	return r.JobTitle == nil && r.CompanyName == nil && r.CompanyLogo == nil &&
		r.JobDescription == nil && r.JobType == nil && r.ExperienceLevel == nil &&
		r.Category == nil && r.RequiredSkills == nil && r.Location == nil &&
		r.SalaryMin == nil && r.SalaryMax == nil && r.Deadline == nil &&
		r.IsTestRequired == nil && r.Openings == nil && r.ContactEmail == nil
}

// Job list sort keys.
const (
	SortRecent       = "recent"
	SortOldest       = "oldest"
	SortSalaryHigh   = "salary_high"
	SortSalaryLow    = "salary_low"
	SortAlphabetical = "alphabetical"
	SortRelevant     = "relevant"
)

// Posted-date windows.
const (
	PostedToday    = "today"
	Posted3Days    = "3days"
	PostedThisWeek = "week"
	PostedMonth    = "month"
)

// ListJobsRequest defines the search/filter/sort/pagination parameters for
// GET /jobs. Unknown sort and postedDate values are ignored. The flag and
// paging fields are read leniently by the handler: anything that is not
// "true" is false and an unparsable page or limit falls back to the default.
type ListJobsRequest struct {
	Search         string `form:"search"`
	Location       string `form:"location"`
	Type           string `form:"type"`
	Level          string `form:"level"`
	Category       string `form:"category"`
	Remote         bool   `form:"-"`
	SalaryMin      *int   `form:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax      *int   `form:"salaryMax" validate:"omitempty,gte=0"`
	RecentlyPosted bool   `form:"-"`
	PostedDate     string `form:"postedDate"`
	Sort           string `form:"sort"`
	Page           int    `form:"-"`
	Limit          int    `form:"-"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// JobListResponse is the body of GET /jobs.
type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	Pagination Pagination   `json:"pagination"`
}

// JobCreatedResponse is the body of POST /jobs.
type JobCreatedResponse struct {
	Message string      `json:"message"`
	Data    *models.Job `json:"data"`
}
