package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard-api/config"
	"jobboard-api/internal/logger"
	"jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Helper to create a pointer to an int
func ptrInt(i int) *int { return &i }

func ptrStr(s string) *string { return &s }

var testJobsConfig = config.JobsConfig{DefaultLimit: 10, MaxLimit: 100}

type jobServiceDeps struct {
	jobs     *mocks.MockJobRepository
	identity *mocks.MockIdentityService
	cache    *mocks.MockCache
}

func setupJobServiceTest(cfg config.JobsConfig) (context.Context, services.JobService, jobServiceDeps) {
	deps := jobServiceDeps{
		jobs:     new(mocks.MockJobRepository),
		identity: new(mocks.MockIdentityService),
		cache:    new(mocks.MockCache),
	}
	svc := services.NewJobService(deps.jobs, deps.identity, deps.cache, cfg, logger.Discard())
	return context.Background(), svc, deps
}

func validCreateJobRequest() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		JobTitle:        "Go Developer",
		CompanyName:     "Acme",
		JobDescription:  "Build services",
		JobType:         "Full-time",
		ExperienceLevel: "Mid",
		Category:        "Engineering",
		RequiredSkills:  []string{"Go", "MongoDB"},
		Location:        "Remote",
		SalaryMin:       ptrInt(50000),
		SalaryMax:       ptrInt(80000),
		ContactEmail:    "hr@acme.test",
	}
}

func TestNormalizePage(t *testing.T) {
	testCases := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative", -3, -1, 1, 10},
		{"kept", 4, 25, 4, 25},
		{"capped", 1, 1000, 1, 100},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := &dto.ListJobsRequest{Page: tc.page, Limit: tc.limit}
			services.NormalizePage(req, testJobsConfig)
			assert.Equal(t, tc.wantPage, req.Page)
			assert.Equal(t, tc.wantLimit, req.Limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, services.TotalPages(0, 10))
	assert.Equal(t, 1, services.TotalPages(1, 10))
	assert.Equal(t, 1, services.TotalPages(10, 10))
	assert.Equal(t, 2, services.TotalPages(11, 10))
	assert.Equal(t, 5, services.TotalPages(41, 9))
}

func TestJobService_ListJobs_NoCache(t *testing.T) {
	ctx, svc, deps := setupJobServiceTest(testJobsConfig)
	jobs := []models.Job{{ID: primitive.NewObjectID(), JobTitle: "A"}}

	deps.jobs.On("Search", ctx, &dto.ListJobsRequest{Search: "go", Page: 2, Limit: 10}).
		Return(jobs, int64(23), nil).Once()

	resp, err := svc.ListJobs(ctx, &dto.ListJobsRequest{Search: "go", Page: 2})

	require.NoError(t, err)
	assert.Equal(t, jobs, resp.Jobs)
	assert.Equal(t, dto.Pagination{Page: 2, Limit: 10, Total: 23, Pages: 3}, resp.Pagination)
	deps.cache.AssertNotCalled(t, "GetJSON", mock.Anything, mock.Anything, mock.Anything)
	deps.jobs.AssertExpectations(t)
}

func TestJobService_ListJobs_CacheHit(t *testing.T) {
	cfg := testJobsConfig
	cfg.CacheTTL = time.Minute
	ctx, svc, deps := setupJobServiceTest(cfg)

	deps.cache.On("Generation", ctx, services.JobsCacheNamespace).Return(int64(3), nil).Once()
	deps.cache.On("GetJSON", ctx, mock.MatchedBy(func(key string) bool {
		return len(key) > len("jobs:list:3:") && key[:len("jobs:list:3:")] == "jobs:list:3:"
	}), mock.Anything).Return(true, nil).Once()

	_, err := svc.ListJobs(ctx, &dto.ListJobsRequest{})

	require.NoError(t, err)
	deps.jobs.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	deps.cache.AssertExpectations(t)
}

func TestJobService_ListJobs_CacheMissStores(t *testing.T) {
	cfg := testJobsConfig
	cfg.CacheTTL = time.Minute
	ctx, svc, deps := setupJobServiceTest(cfg)

	deps.cache.On("Generation", ctx, services.JobsCacheNamespace).Return(int64(0), nil).Once()
	deps.cache.On("GetJSON", ctx, mock.AnythingOfType("string"), mock.Anything).Return(false, nil).Once()
	deps.jobs.On("Search", ctx, mock.AnythingOfType("*dto.ListJobsRequest")).Return([]models.Job{}, int64(0), nil).Once()
	deps.cache.On("SetJSON", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("*dto.JobListResponse"), time.Minute).Return(nil).Once()

	resp, err := svc.ListJobs(ctx, &dto.ListJobsRequest{})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Pagination.Pages)
	deps.cache.AssertExpectations(t)
}

func TestJobService_ListJobs_CacheErrorFallsThrough(t *testing.T) {
	cfg := testJobsConfig
	cfg.CacheTTL = time.Minute
	ctx, svc, deps := setupJobServiceTest(cfg)

	deps.cache.On("Generation", ctx, services.JobsCacheNamespace).Return(int64(0), errors.New("redis down")).Once()
	deps.jobs.On("Search", ctx, mock.AnythingOfType("*dto.ListJobsRequest")).Return([]models.Job{}, int64(0), nil).Once()

	_, err := svc.ListJobs(ctx, &dto.ListJobsRequest{})

	require.NoError(t, err)
	deps.cache.AssertNotCalled(t, "SetJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJobService_ListJobs_PostedWindowsBypassCache(t *testing.T) {
	cfg := testJobsConfig
	cfg.CacheTTL = time.Minute

	for _, req := range []*dto.ListJobsRequest{
		{RecentlyPosted: true},
		{PostedDate: dto.PostedToday},
	} {
		ctx, svc, deps := setupJobServiceTest(cfg)
		deps.jobs.On("Search", ctx, mock.AnythingOfType("*dto.ListJobsRequest")).Return([]models.Job{}, int64(0), nil).Once()

		_, err := svc.ListJobs(ctx, req)

		require.NoError(t, err)
		deps.jobs.AssertExpectations(t)
		deps.cache.AssertNotCalled(t, "Generation", mock.Anything, mock.Anything)
		deps.cache.AssertNotCalled(t, "GetJSON", mock.Anything, mock.Anything, mock.Anything)
		deps.cache.AssertNotCalled(t, "SetJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestJobService_ListJobs_StoreError(t *testing.T) {
	ctx, svc, deps := setupJobServiceTest(testJobsConfig)

	deps.jobs.On("Search", ctx, mock.Anything).Return(nil, int64(0), errors.New("boom")).Once()

	_, err := svc.ListJobs(ctx, &dto.ListJobsRequest{})
	assert.ErrorIs(t, err, services.ErrUpstream)
}

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, svc, deps := setupJobServiceTest(testJobsConfig)
	p := models.Principal{ExternalID: "ext_r"}
	recruiter := &models.User{ID: primitive.NewObjectID(), Role: models.RoleRecruiter}
	req := validCreateJobRequest()

	deps.identity.On("Resolve", ctx, p, services.ResolveHints{
		Email: "hr@acme.test",
		Name:  "Acme",
		Role:  models.RoleRecruiter,
	}).Return(recruiter, nil).Once()
	deps.jobs.On("Create", ctx, mock.MatchedBy(func(j *models.Job) bool {
		return j.Recruiter == recruiter.ID &&
			j.LegacyUserID == "ext_r" &&
			j.SalaryMin == 50000 && j.SalaryMax == 80000 &&
			j.JobTitle == "Go Developer"
	})).Return(&models.Job{ID: primitive.NewObjectID(), Recruiter: recruiter.ID}, nil).Once()
	deps.cache.On("Bump", ctx, services.JobsCacheNamespace).Return(nil).Once()

	job, err := svc.CreateJob(ctx, p, req)

	require.NoError(t, err)
	assert.Equal(t, recruiter.ID, job.Recruiter)
	deps.jobs.AssertExpectations(t)
	deps.cache.AssertExpectations(t)
}

func TestJobService_CreateJob_NameFallback(t *testing.T) {
	ctx, svc, deps := setupJobServiceTest(testJobsConfig)
	p := models.Principal{ExternalID: "ext_r"}
	req := validCreateJobRequest()
	req.CompanyName = ""

	deps.identity.On("Resolve", ctx, p, mock.MatchedBy(func(h services.ResolveHints) bool {
		return h.Name == "Recruiter"
	})).Return(nil, services.ErrUserCreationFailed).Once()

	_, err := svc.CreateJob(ctx, p, req)
	assert.ErrorIs(t, err, services.ErrUserCreationFailed)
}

func TestJobService_CreateJob_JobSeekerForbidden(t *testing.T) {
	ctx, svc, deps := setupJobServiceTest(testJobsConfig)
	p := models.Principal{ExternalID: "ext_s"}

	deps.identity.On("Resolve", ctx, p, mock.Anything).
		Return(&models.User{ID: primitive.NewObjectID(), Role: models.RoleJobSeeker}, nil).Once()

	_, err := svc.CreateJob(ctx, p, validCreateJobRequest())

	assert.ErrorIs(t, err, services.ErrForbidden)
	deps.jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobService_GetJob_IncrementsViews(t *testing.T) {
	ctx, svc, deps := setupJobServiceTest(testJobsConfig)
	id := primitive.NewObjectID()

	deps.jobs.On("IncrementViews", ctx, id).Return(&models.Job{ID: id, Views: 1}, nil).Once()
	deps.jobs.On("IncrementViews", ctx, id).Return(&models.Job{ID: id, Views: 2}, nil).Once()

	first, err := svc.GetJob(ctx, id)
	require.NoError(t, err)
	second, err := svc.GetJob(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, first.Views+1, second.Views)
	deps.jobs.AssertNumberOfCalls(t, "IncrementViews", 2)
}

func TestJobService_GetJob_NotFound(t *testing.T) {
	ctx, svc, deps := setupJobServiceTest(testJobsConfig)
	id := primitive.NewObjectID()

	deps.jobs.On("IncrementViews", ctx, id).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.GetJob(ctx, id)
	assert.ErrorIs(t, err, services.ErrJobNotFound)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestJobService_UpdateJob(t *testing.T) {
	owner := &models.User{ID: primitive.NewObjectID(), Role: models.RoleRecruiter}
	other := &models.User{ID: primitive.NewObjectID(), Role: models.RoleRecruiter}
	jobID := primitive.NewObjectID()
	job := &models.Job{ID: jobID, Recruiter: owner.ID}
	req := &dto.UpdateJobRequest{JobTitle: ptrStr("Senior Go Developer")}

	t.Run("owner", func(t *testing.T) {
		ctx, svc, deps := setupJobServiceTest(testJobsConfig)
		p := models.Principal{ExternalID: "owner"}
		deps.jobs.On("GetByID", ctx, jobID).Return(job, nil).Once()
		deps.identity.On("Lookup", ctx, p).Return(owner, nil).Once()
		deps.jobs.On("Update", ctx, jobID, req).Return(&models.Job{ID: jobID, JobTitle: "Senior Go Developer"}, nil).Once()
		deps.cache.On("Bump", ctx, services.JobsCacheNamespace).Return(nil).Once()

		updated, err := svc.UpdateJob(ctx, p, jobID, req)
		require.NoError(t, err)
		assert.Equal(t, "Senior Go Developer", updated.JobTitle)
	})

	t.Run("non-owner", func(t *testing.T) {
		ctx, svc, deps := setupJobServiceTest(testJobsConfig)
		p := models.Principal{ExternalID: "other"}
		deps.jobs.On("GetByID", ctx, jobID).Return(job, nil).Once()
		deps.identity.On("Lookup", ctx, p).Return(other, nil).Once()

		_, err := svc.UpdateJob(ctx, p, jobID, req)
		assert.ErrorIs(t, err, services.ErrForbidden)
		deps.jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown principal", func(t *testing.T) {
		ctx, svc, deps := setupJobServiceTest(testJobsConfig)
		p := models.Principal{ExternalID: "ghost"}
		deps.jobs.On("GetByID", ctx, jobID).Return(job, nil).Once()
		deps.identity.On("Lookup", ctx, p).Return(nil, services.ErrUserNotFound).Once()

		_, err := svc.UpdateJob(ctx, p, jobID, req)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("empty body", func(t *testing.T) {
		ctx, svc, _ := setupJobServiceTest(testJobsConfig)
		_, err := svc.UpdateJob(ctx, models.Principal{ExternalID: "owner"}, jobID, &dto.UpdateJobRequest{})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("missing job", func(t *testing.T) {
		ctx, svc, deps := setupJobServiceTest(testJobsConfig)
		deps.jobs.On("GetByID", ctx, jobID).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.UpdateJob(ctx, models.Principal{ExternalID: "owner"}, jobID, req)
		assert.ErrorIs(t, err, services.ErrJobNotFound)
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	owner := &models.User{ID: primitive.NewObjectID(), Role: models.RoleRecruiter}
	jobID := primitive.NewObjectID()
	job := &models.Job{ID: jobID, Recruiter: owner.ID}

	t.Run("owner", func(t *testing.T) {
		ctx, svc, deps := setupJobServiceTest(testJobsConfig)
		p := models.Principal{ExternalID: "owner"}
		deps.jobs.On("GetByID", ctx, jobID).Return(job, nil).Once()
		deps.identity.On("Lookup", ctx, p).Return(owner, nil).Once()
		deps.jobs.On("Delete", ctx, jobID).Return(nil).Once()
		deps.cache.On("Bump", ctx, services.JobsCacheNamespace).Return(nil).Once()

		require.NoError(t, svc.DeleteJob(ctx, p, jobID))
		deps.jobs.AssertExpectations(t)
	})

	t.Run("applicant cannot delete", func(t *testing.T) {
		ctx, svc, deps := setupJobServiceTest(testJobsConfig)
		p := models.Principal{ExternalID: "seeker"}
		deps.jobs.On("GetByID", ctx, jobID).Return(job, nil).Once()
		deps.identity.On("Lookup", ctx, p).Return(&models.User{ID: primitive.NewObjectID(), Role: models.RoleJobSeeker}, nil).Once()

		assert.ErrorIs(t, svc.DeleteJob(ctx, p, jobID), services.ErrForbidden)
		deps.jobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("cache failure does not fail delete", func(t *testing.T) {
		ctx, svc, deps := setupJobServiceTest(testJobsConfig)
		p := models.Principal{ExternalID: "owner"}
		deps.jobs.On("GetByID", ctx, jobID).Return(job, nil).Once()
		deps.identity.On("Lookup", ctx, p).Return(owner, nil).Once()
		deps.jobs.On("Delete", ctx, jobID).Return(nil).Once()
		deps.cache.On("Bump", ctx, services.JobsCacheNamespace).Return(errors.New("redis down")).Once()

		assert.NoError(t, svc.DeleteJob(ctx, p, jobID))
	})
}

func TestJobService_Dashboard(t *testing.T) {
	t.Run("unknown principal gets empty list", func(t *testing.T) {
		ctx, svc, deps := setupJobServiceTest(testJobsConfig)
		p := models.Principal{ExternalID: "new"}
		deps.identity.On("Lookup", ctx, p).Return(nil, services.ErrUserNotFound).Once()

		jobs, err := svc.Dashboard(ctx, p)
		require.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
		deps.identity.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner jobs", func(t *testing.T) {
		ctx, svc, deps := setupJobServiceTest(testJobsConfig)
		p := models.Principal{ExternalID: "ext_r"}
		owner := &models.User{ID: primitive.NewObjectID()}
		want := []models.Job{{ID: primitive.NewObjectID()}}
		deps.identity.On("Lookup", ctx, p).Return(owner, nil).Once()
		deps.jobs.On("ListByOwner", ctx, owner.ID, "ext_r").Return(want, nil).Once()

		jobs, err := svc.Dashboard(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, want, jobs)
	})
}
