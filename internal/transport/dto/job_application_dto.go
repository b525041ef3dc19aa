package dto

import (
	"time"

	"jobboard-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmitApplicationRequest is the body of POST /applications.
type SubmitApplicationRequest struct {
	JobID        string                    `json:"jobId" validate:"required,len=24,hexadecimal"`
	CoverLetter  string                    `json:"coverLetter" validate:"omitempty,max=20000"`
	Resume       string                    `json:"resume" validate:"omitempty,max=2048"` // name or URL, never content
	CustomFields *models.ApplicationFields `json:"customFields"`
}

// ListApplicationsRequest holds the optional recruiter-side job filter.
type ListApplicationsRequest struct {
	JobID string `form:"jobId" validate:"omitempty,len=24,hexadecimal"`
}

// UpdateApplicationStatusRequest is the body of PATCH /applications/{id}.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=pending reviewing interview rejected hired"`
}

// JobSummary is the subset of a Job joined into application views.
type JobSummary struct {
	ID          primitive.ObjectID `json:"_id"`
	JobTitle    string             `json:"jobTitle"`
	CompanyName string             `json:"companyName"`
	Location    string             `json:"location"`
	JobType     string             `json:"jobType"`
	CompanyLogo string             `json:"companyLogo,omitempty"`
	SalaryMin   int                `json:"salaryMin"`
	SalaryMax   int                `json:"salaryMax"`
}

// ApplicantSummary is the subset of a User joined into application views.
type ApplicantSummary struct {
	ID      primitive.ObjectID `json:"_id"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Profile *models.Profile    `json:"profile,omitempty"`
}

// ApplicationResponse is an Application joined with its Job and applicant.
// The flat display fields are always populated: joined Job values first,
// then the application snapshot, then placeholders.
type ApplicationResponse struct {
	ID             primitive.ObjectID        `json:"_id"`
	Job            *JobSummary               `json:"job"`
	Applicant      *ApplicantSummary         `json:"applicant"`
	CoverLetter    string                    `json:"coverLetter,omitempty"`
	Resume         string                    `json:"resume,omitempty"`
	CustomFields   *models.ApplicationFields `json:"customFields,omitempty"`
	ApplicantScore *float64                  `json:"applicantScore,omitempty"`
	Status         models.ApplicationStatus  `json:"status"`

	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Skills    string `json:"skills,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Education string `json:"education,omitempty"`

	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	JobType     string `json:"jobType"`
	CompanyLogo string `json:"companyLogo"`
	SalaryMin   int    `json:"salaryMin"`
	SalaryMax   int    `json:"salaryMax"`

	AppliedAt time.Time `json:"appliedAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
