package mocks

import (
	"context"
	"time"

	"jobboard-api/internal/cache"
	"jobboard-api/internal/models"
	"jobboard-api/internal/notify"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockNotifier is a mock type for the notify.Notifier interface
type MockNotifier struct {
	mock.Mock
}

var _ notify.Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) ApplicationSubmitted(ctx context.Context, n notify.ApplicationSubmitted) error {
	return m.Called(ctx, n).Error(0)
}

// MockCache is a mock type for the cache.Cache interface
type MockCache struct {
	mock.Mock
}

var _ cache.Cache = (*MockCache)(nil)

func (m *MockCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	return m.Called(ctx, key, val, ttl).Error(0)
}

func (m *MockCache) Del(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *MockCache) Generation(ctx context.Context, namespace string) (int64, error) {
	args := m.Called(ctx, namespace)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) Bump(ctx context.Context, namespace string) error {
	return m.Called(ctx, namespace).Error(0)
}

// MockIdentityService is a mock type for the services.IdentityService interface
type MockIdentityService struct {
	mock.Mock
}

var _ services.IdentityService = (*MockIdentityService)(nil)

func (m *MockIdentityService) Resolve(ctx context.Context, p models.Principal, hints services.ResolveHints) (*models.User, error) {
	return userOrNil(m.Called(ctx, p, hints))
}

func (m *MockIdentityService) Lookup(ctx context.Context, p models.Principal) (*models.User, error) {
	return userOrNil(m.Called(ctx, p))
}

// MockJobService is a mock type for the services.JobService interface
type MockJobService struct {
	mock.Mock
}

var _ services.JobService = (*MockJobService)(nil)

func (m *MockJobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) (*dto.JobListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.JobListResponse), args.Error(1)
}

func (m *MockJobService) CreateJob(ctx context.Context, p models.Principal, req *dto.CreateJobRequest) (*models.Job, error) {
	return jobOrNil(m.Called(ctx, p, req))
}

func (m *MockJobService) GetJob(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	return jobOrNil(m.Called(ctx, id))
}

func (m *MockJobService) UpdateJob(ctx context.Context, p models.Principal, id primitive.ObjectID, req *dto.UpdateJobRequest) (*models.Job, error) {
	return jobOrNil(m.Called(ctx, p, id, req))
}

func (m *MockJobService) DeleteJob(ctx context.Context, p models.Principal, id primitive.ObjectID) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockJobService) Dashboard(ctx context.Context, p models.Principal) ([]models.Job, error) {
	return jobsOrNil(m.Called(ctx, p))
}

// MockApplicationService is a mock type for the services.ApplicationService interface
type MockApplicationService struct {
	mock.Mock
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

func appResponseOrNil(args mock.Arguments) (*dto.ApplicationResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ApplicationResponse), args.Error(1)
}

func (m *MockApplicationService) Submit(ctx context.Context, p models.Principal, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	return appResponseOrNil(m.Called(ctx, p, req))
}

func (m *MockApplicationService) List(ctx context.Context, p models.Principal, req *dto.ListApplicationsRequest) ([]dto.ApplicationResponse, error) {
	args := m.Called(ctx, p, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ApplicationResponse), args.Error(1)
}

func (m *MockApplicationService) Get(ctx context.Context, p models.Principal, id primitive.ObjectID) (*dto.ApplicationResponse, error) {
	return appResponseOrNil(m.Called(ctx, p, id))
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, p models.Principal, id primitive.ObjectID, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	return appResponseOrNil(m.Called(ctx, p, id, status))
}

// MockUserService is a mock type for the services.UserService interface
type MockUserService struct {
	mock.Mock
}

var _ services.UserService = (*MockUserService)(nil)

func (m *MockUserService) GetMe(ctx context.Context, p models.Principal) (*models.User, error) {
	return userOrNil(m.Called(ctx, p))
}

func (m *MockUserService) UpdateMe(ctx context.Context, p models.Principal, req *dto.UpdateUserRequest) (*models.User, error) {
	return userOrNil(m.Called(ctx, p, req))
}

func (m *MockUserService) ListSavedJobs(ctx context.Context, p models.Principal) ([]models.Job, error) {
	return jobsOrNil(m.Called(ctx, p))
}

func (m *MockUserService) SaveJob(ctx context.Context, p models.Principal, jobID primitive.ObjectID) (*models.User, error) {
	return userOrNil(m.Called(ctx, p, jobID))
}

func (m *MockUserService) UnsaveJob(ctx context.Context, p models.Principal, jobID primitive.ObjectID) (*models.User, error) {
	return userOrNil(m.Called(ctx, p, jobID))
}
