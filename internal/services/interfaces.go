package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResolveHints steer user creation on first sight of a principal.
type ResolveHints struct {
	Email string      // used when the principal carries no email claim
	Name  string      // used when the principal carries no name claim
	Role  models.Role // role on creation; defaults to job_seeker
}

// IdentityService maps verified principals to local users.
type IdentityService interface {
	// Resolve returns the user for p, creating it if absent.
	Resolve(ctx context.Context, p models.Principal, hints ResolveHints) (*models.User, error)
	// Lookup never creates; returns ErrUserNotFound when absent.
	Lookup(ctx context.Context, p models.Principal) (*models.User, error)
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) (*dto.JobListResponse, error)
	CreateJob(ctx context.Context, p models.Principal, req *dto.CreateJobRequest) (*models.Job, error)
	// GetJob increments the view counter on every call.
	GetJob(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	UpdateJob(ctx context.Context, p models.Principal, id primitive.ObjectID, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, p models.Principal, id primitive.ObjectID) error
	Dashboard(ctx context.Context, p models.Principal) ([]models.Job, error)
}

// ApplicationService defines the interface for job application business logic.
type ApplicationService interface {
	Submit(ctx context.Context, p models.Principal, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	List(ctx context.Context, p models.Principal, req *dto.ListApplicationsRequest) ([]dto.ApplicationResponse, error)
	Get(ctx context.Context, p models.Principal, id primitive.ObjectID) (*dto.ApplicationResponse, error)
	UpdateStatus(ctx context.Context, p models.Principal, id primitive.ObjectID, status models.ApplicationStatus) (*dto.ApplicationResponse, error)
}

// UserService defines the interface for the acting user's own record.
type UserService interface {
	GetMe(ctx context.Context, p models.Principal) (*models.User, error)
	UpdateMe(ctx context.Context, p models.Principal, req *dto.UpdateUserRequest) (*models.User, error)
	ListSavedJobs(ctx context.Context, p models.Principal) ([]models.Job, error)
	SaveJob(ctx context.Context, p models.Principal, jobID primitive.ObjectID) (*models.User, error)
	UnsaveJob(ctx context.Context, p models.Principal, jobID primitive.ObjectID) (*models.User, error)
}
