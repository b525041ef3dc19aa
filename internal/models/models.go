package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Role Enum ---
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// ParseRole validates a role string.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleJobSeeker, RoleRecruiter, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

// --- Application Status Enum ---
type ApplicationStatus string

// Any status may be set from any other; there is no transition graph.
const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusHired     ApplicationStatus = "hired"
)

// ParseApplicationStatus validates a status string.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch st := ApplicationStatus(s); st {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusInterview,
		ApplicationStatusRejected, ApplicationStatusHired:
		return st, nil
	default:
		return "", fmt.Errorf("invalid application status: %q", s)
	}
}

// Profile holds job-seeker attributes.
type Profile struct {
	Phone      string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio        string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills     []string `bson:"skills,omitempty" json:"skills,omitempty"`
	Experience string   `bson:"experience,omitempty" json:"experience,omitempty"`
	Education  string   `bson:"education,omitempty" json:"education,omitempty"`
	Resume     string   `bson:"resume,omitempty" json:"resume,omitempty"` // URL or file name only
	Location   string   `bson:"location,omitempty" json:"location,omitempty"`
	Website    string   `bson:"website,omitempty" json:"website,omitempty"`
	LinkedIn   string   `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub     string   `bson:"github,omitempty" json:"github,omitempty"`
}

// Company holds recruiter organization attributes.
type Company struct {
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Website     string `bson:"website,omitempty" json:"website,omitempty"`
	Logo        string `bson:"logo,omitempty" json:"logo,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	Industry    string `bson:"industry,omitempty" json:"industry,omitempty"`
	Size        string `bson:"size,omitempty" json:"size,omitempty"`
}

// Settings are stored and displayed only.
type Settings struct {
	EmailNotifications bool `bson:"emailNotifications" json:"emailNotifications"`
	JobAlerts          bool `bson:"jobAlerts" json:"jobAlerts"`
	ProfileVisibility  bool `bson:"profileVisibility" json:"profileVisibility"`
	TwoFactorAuth      bool `bson:"twoFactorAuth" json:"twoFactorAuth"`
}

// DefaultSettings mirrors the defaults applied to newly created users.
func DefaultSettings() Settings {
	return Settings{EmailNotifications: true, JobAlerts: true}
}

// User is the local record for an identity provider principal.
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	ExternalID string               `bson:"externalId" json:"externalId"` // unique, issued by the identity provider
	Email      string               `bson:"email" json:"email"`           // unique
	Name       string               `bson:"name" json:"name"`
	Role       Role                 `bson:"role" json:"role"`
	Profile    *Profile             `bson:"profile,omitempty" json:"profile,omitempty"`
	Company    *Company             `bson:"company,omitempty" json:"company,omitempty"`
	SavedJobs  []primitive.ObjectID `bson:"savedJobs,omitempty" json:"savedJobs,omitempty"`
	Settings   Settings             `bson:"settings" json:"settings"`
	CreatedAt  time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Job is a posting owned by exactly one recruiter.
type Job struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Recruiter primitive.ObjectID `bson:"recruiter" json:"recruiter"`
	// LegacyUserID is the owner's external id. Not authoritative; Recruiter is.
	LegacyUserID string `bson:"userId,omitempty" json:"userId,omitempty"`

	JobTitle        string     `bson:"jobTitle" json:"jobTitle"`
	CompanyName     string     `bson:"companyName" json:"companyName"`
	CompanyLogo     string     `bson:"companyLogo,omitempty" json:"companyLogo,omitempty"`
	JobDescription  string     `bson:"jobDescription" json:"jobDescription"`
	JobType         string     `bson:"jobType" json:"jobType"`
	ExperienceLevel string     `bson:"experienceLevel" json:"experienceLevel"`
	Category        string     `bson:"category" json:"category"`
	RequiredSkills  []string   `bson:"requiredSkills" json:"requiredSkills"`
	Location        string     `bson:"location" json:"location"`
	SalaryMin       int        `bson:"salaryMin" json:"salaryMin"`
	SalaryMax       int        `bson:"salaryMax" json:"salaryMax"`
	Deadline        *time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`
	IsTestRequired  bool       `bson:"isTestRequired" json:"isTestRequired"`
	Openings        int        `bson:"openings,omitempty" json:"openings,omitempty"`
	ContactEmail    string     `bson:"contactEmail" json:"contactEmail"`

	Applications []primitive.ObjectID `bson:"applications" json:"applications"`
	Views        int64                `bson:"views" json:"views"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// OwnedBy reports whether the given user is the authoritative owner.
func (j *Job) OwnedBy(userID primitive.ObjectID) bool {
	return !j.Recruiter.IsZero() && j.Recruiter == userID
}

// ApplicationFields are applicant-supplied values that override profile defaults.
type ApplicationFields struct {
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
	Email     string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Skills    string `bson:"skills,omitempty" json:"skills,omitempty"`
	Bio       string `bson:"bio,omitempty" json:"bio,omitempty"`
	Education string `bson:"education,omitempty" json:"education,omitempty"`
}

// Application is a job seeker's submission against one Job.
// The snapshot fields are captured at submission and never rewritten.
type Application struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Job            primitive.ObjectID `bson:"job" json:"job"`
	Applicant      primitive.ObjectID `bson:"applicant" json:"applicant"`
	CoverLetter    string             `bson:"coverLetter,omitempty" json:"coverLetter,omitempty"`
	Resume         string             `bson:"resume,omitempty" json:"resume,omitempty"`
	CustomFields   *ApplicationFields `bson:"customFields,omitempty" json:"customFields,omitempty"`
	ApplicantScore *float64           `bson:"applicantScore,omitempty" json:"applicantScore,omitempty"`
	Status         ApplicationStatus  `bson:"status" json:"status"`

	// Snapshot
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Skills      string `bson:"skills,omitempty" json:"skills,omitempty"`
	Bio         string `bson:"bio,omitempty" json:"bio,omitempty"`
	Education   string `bson:"education,omitempty" json:"education,omitempty"`
	JobTitle    string `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	CompanyName string `bson:"companyName,omitempty" json:"companyName,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`

	AppliedAt time.Time `bson:"appliedAt" json:"appliedAt"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Principal is the verified caller identity supplied by the identity provider.
type Principal struct {
	ExternalID string `json:"externalId"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
}
