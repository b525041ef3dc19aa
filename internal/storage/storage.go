package storage

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error) // ErrConflict on duplicate externalId/email
	UpdateExternalID(ctx context.Context, id primitive.ObjectID, externalID string) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateUserRequest) (*models.User, error)
	AddSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) (*models.User, error)
	RemoveSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) (*models.User, error)
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Job, error)
	// Search applies the filter/sort/pagination parameters. req.Page and
	// req.Limit must already be normalized. Returns the page and the total
	// number of matching documents.
	Search(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, int64, error)
	// ListByOwner matches the authoritative recruiter reference or, when
	// legacyUserID is non-empty, the legacy external-id field.
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID, legacyUserID string) ([]models.Job, error)
	ListIDsByRecruiter(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateJobRequest) (*models.Job, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	AppendApplication(ctx context.Context, jobID, applicationID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ApplicationFilter narrows an application listing. A nil JobIDs means no job
// restriction; a non-nil empty slice matches nothing.
type ApplicationFilter struct {
	ApplicantID primitive.ObjectID
	JobIDs      []primitive.ObjectID
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error) // ErrConflict on duplicate (job, applicant)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID primitive.ObjectID) (*models.Application, error)
	// List returns matching applications, newest first.
	List(ctx context.Context, filter ApplicationFilter) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) (*models.Application, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TxRunner runs fn so that all store writes made with the ctx it receives
// commit together, when the backing store supports it.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	Transactional() bool
}
