package mocks

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock type for the storage.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

func userOrNil(args mock.Arguments) (*models.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return userOrNil(m.Called(ctx, id))
}

func (m *MockUserRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	return userOrNil(m.Called(ctx, externalID))
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return userOrNil(m.Called(ctx, email))
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return userOrNil(m.Called(ctx, user))
}

func (m *MockUserRepository) UpdateExternalID(ctx context.Context, id primitive.ObjectID, externalID string) (*models.User, error) {
	return userOrNil(m.Called(ctx, id, externalID))
}

func (m *MockUserRepository) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateUserRequest) (*models.User, error) {
	return userOrNil(m.Called(ctx, id, req))
}

func (m *MockUserRepository) AddSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) (*models.User, error) {
	return userOrNil(m.Called(ctx, userID, jobID))
}

func (m *MockUserRepository) RemoveSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) (*models.User, error) {
	return userOrNil(m.Called(ctx, userID, jobID))
}

// MockJobRepository is a mock type for the storage.JobRepository interface
type MockJobRepository struct {
	mock.Mock
}

var _ storage.JobRepository = (*MockJobRepository)(nil)

func jobOrNil(args mock.Arguments) (*models.Job, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func jobsOrNil(args mock.Arguments) ([]models.Job, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	return jobOrNil(m.Called(ctx, job))
}

func (m *MockJobRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	return jobOrNil(m.Called(ctx, id))
}

func (m *MockJobRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Job, error) {
	return jobsOrNil(m.Called(ctx, ids))
}

func (m *MockJobRepository) Search(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, int64, error) {
	args := m.Called(ctx, req)
	var jobs []models.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]models.Job)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, legacyUserID string) ([]models.Job, error) {
	return jobsOrNil(m.Called(ctx, ownerID, legacyUserID))
}

func (m *MockJobRepository) ListIDsByRecruiter(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]primitive.ObjectID), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateJobRequest) (*models.Job, error) {
	return jobOrNil(m.Called(ctx, id, req))
}

func (m *MockJobRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	return jobOrNil(m.Called(ctx, id))
}

func (m *MockJobRepository) AppendApplication(ctx context.Context, jobID, applicationID primitive.ObjectID) error {
	return m.Called(ctx, jobID, applicationID).Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

// MockApplicationRepository is a mock type for the storage.ApplicationRepository interface
type MockApplicationRepository struct {
	mock.Mock
}

var _ storage.ApplicationRepository = (*MockApplicationRepository)(nil)

func appOrNil(args mock.Arguments) (*models.Application, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	return appOrNil(m.Called(ctx, app))
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	return appOrNil(m.Called(ctx, id))
}

func (m *MockApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID primitive.ObjectID) (*models.Application, error) {
	return appOrNil(m.Called(ctx, jobID, applicantID))
}

func (m *MockApplicationRepository) List(ctx context.Context, filter storage.ApplicationFilter) ([]models.Application, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) (*models.Application, error) {
	return appOrNil(m.Called(ctx, id, status))
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

// FakeTxRunner runs fn inline. Transactional reports the configured value.
type FakeTxRunner struct {
	Tx bool
}

var _ storage.TxRunner = FakeTxRunner{}

func (f FakeTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f FakeTxRunner) Transactional() bool { return f.Tx }
