package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/logger"
	"jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testPrincipal = models.Principal{ExternalID: "ext_1", Email: "me@test.com"}

type testRouter struct {
	engine *gin.Engine
	jobs   *mocks.MockJobService
	apps   *mocks.MockApplicationService
	users  *mocks.MockUserService
	// acting is the principal injected on authenticated routes.
	acting models.Principal
}

func setupTestRouter(authenticated bool) *testRouter {
	gin.SetMode(gin.TestMode)
	tr := &testRouter{
		engine: gin.New(),
		jobs:   new(mocks.MockJobService),
		apps:   new(mocks.MockApplicationService),
		users:  new(mocks.MockUserService),
		acting: testPrincipal,
	}
	v := handlers.NewValidator()
	log := logger.Discard()
	jobH := handlers.NewJobHandler(tr.jobs, v, log)
	appH := handlers.NewApplicationHandler(tr.apps, v, log)
	userH := handlers.NewUserHandler(tr.users, v, log)

	tr.engine.GET("/jobs", jobH.ListJobs)
	tr.engine.GET("/jobs/:id", jobH.GetJobByID)

	auth := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	if authenticated {
		// Stands in for PrincipalAuth.
		auth = func(c *gin.Context) {
			middleware.SetPrincipal(c, tr.acting)
			c.Next()
		}
	}
	g := tr.engine.Group("/", auth)
	g.POST("/jobs", jobH.CreateJob)
	g.PUT("/jobs/:id", jobH.UpdateJob)
	g.DELETE("/jobs/:id", jobH.DeleteJob)
	g.GET("/dashboard", jobH.Dashboard)
	g.POST("/applications", appH.SubmitApplication)
	g.GET("/applications", appH.ListApplications)
	g.GET("/applications/:id", appH.GetApplicationByID)
	g.PATCH("/applications/:id", appH.UpdateApplicationStatus)
	g.GET("/users/me", userH.GetMe)
	g.PUT("/users/me", userH.UpdateMe)
	g.GET("/users/me/saved-jobs", userH.ListSavedJobs)
	g.PUT("/users/me/saved-jobs/:jobId", userH.SaveJob)
	g.DELETE("/users/me/saved-jobs/:jobId", userH.UnsaveJob)
	return tr
}

func (tr *testRouter) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tr.engine.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func validCreateJobBody() map[string]any {
	return map[string]any{
		"jobTitle":        "Go Developer",
		"companyName":     "Acme",
		"jobDescription":  "Build APIs",
		"jobType":         "Full-time",
		"experienceLevel": "Senior",
		"category":        "Engineering",
		"location":        "Remote",
		"salaryMin":       0,
		"salaryMax":       120000,
		"contactEmail":    "hr@acme.test",
	}
}

func TestListJobs_BindsQuery(t *testing.T) {
	tr := setupTestRouter(false)
	resp := &dto.JobListResponse{Jobs: []models.Job{}, Pagination: dto.Pagination{Page: 2, Limit: 5}}

	tr.jobs.On("ListJobs", mock.Anything, mock.MatchedBy(func(r *dto.ListJobsRequest) bool {
		return r.Search == "go" && r.Remote && r.SalaryMin != nil && *r.SalaryMin == 0 &&
			r.SalaryMax == nil && r.Sort == dto.SortSalaryHigh && r.Page == 2 && r.Limit == 5
	})).Return(resp, nil).Once()

	w := tr.do(http.MethodGet, "/jobs?search=go&remote=true&salaryMin=0&sort=salary_high&page=2&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pagination":{"page":2,"limit":5`)
	tr.jobs.AssertExpectations(t)
}

func TestListJobs_BadQuery(t *testing.T) {
	tr := setupTestRouter(false)

	w := tr.do(http.MethodGet, "/jobs?salaryMin=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = tr.do(http.MethodGet, "/jobs?salaryMax=-5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "salaryMax")

	tr.jobs.AssertNotCalled(t, "ListJobs", mock.Anything, mock.Anything)
}

func TestListJobs_LenientFlagsAndPaging(t *testing.T) {
	tr := setupTestRouter(false)
	resp := &dto.JobListResponse{Jobs: []models.Job{}, Pagination: dto.Pagination{Page: 1, Limit: 10}}

	tr.jobs.On("ListJobs", mock.Anything, mock.MatchedBy(func(r *dto.ListJobsRequest) bool {
		return !r.Remote && !r.RecentlyPosted && r.Page == 0 && r.Limit == 0
	})).Return(resp, nil).Once()

	w := tr.do(http.MethodGet, "/jobs?page=abc&limit=x&remote=yes&recentlyPosted=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	tr.jobs.AssertExpectations(t)
}

func TestListJobs_StoreFailure(t *testing.T) {
	tr := setupTestRouter(false)
	tr.jobs.On("ListJobs", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: boom", services.ErrUpstream)).Once()

	w := tr.do(http.MethodGet, "/jobs", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to retrieve jobs", decodeError(t, w)["error"])
}

func TestCreateJob(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tr := setupTestRouter(true)
		created := &models.Job{ID: primitive.NewObjectID(), JobTitle: "Go Developer"}
		tr.jobs.On("CreateJob", mock.Anything, testPrincipal, mock.MatchedBy(func(r *dto.CreateJobRequest) bool {
			return r.JobTitle == "Go Developer" && r.SalaryMin != nil && *r.SalaryMin == 0
		})).Return(created, nil).Once()

		w := tr.do(http.MethodPost, "/jobs", validCreateJobBody())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"Job created successfully"`)
		assert.Contains(t, w.Body.String(), created.ID.Hex())
	})

	t.Run("missing fields", func(t *testing.T) {
		tr := setupTestRouter(true)
		body := validCreateJobBody()
		delete(body, "jobTitle")
		delete(body, "salaryMax")
		body["contactEmail"] = "not-an-email"

		w := tr.do(http.MethodPost, "/jobs", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		details, ok := decodeError(t, w)["details"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, details, "jobTitle")
		assert.Contains(t, details, "salaryMax")
		assert.Contains(t, details, "contactEmail")
		tr.jobs.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed json", func(t *testing.T) {
		tr := setupTestRouter(true)
		w := tr.do(http.MethodPost, "/jobs", `{"jobTitle":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("job seeker forbidden", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.jobs.On("CreateJob", mock.Anything, testPrincipal, mock.Anything).Return(nil, services.ErrForbidden).Once()

		w := tr.do(http.MethodPost, "/jobs", validCreateJobBody())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		tr := setupTestRouter(false)
		w := tr.do(http.MethodPost, "/jobs", validCreateJobBody())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetJobByID(t *testing.T) {
	tr := setupTestRouter(false)
	id := primitive.NewObjectID()
	missing := primitive.NewObjectID()

	tr.jobs.On("GetJob", mock.Anything, id).Return(&models.Job{ID: id, Views: 4}, nil).Once()
	tr.jobs.On("GetJob", mock.Anything, missing).Return(nil, services.ErrJobNotFound).Once()

	w := tr.do(http.MethodGet, "/jobs/"+id.Hex(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"views":4`)

	w = tr.do(http.MethodGet, "/jobs/"+missing.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found", decodeError(t, w)["error"])

	w = tr.do(http.MethodGet, "/jobs/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid job ID format", decodeError(t, w)["error"])
}

func TestUpdateAndDeleteJob(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("update by non-owner", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.jobs.On("UpdateJob", mock.Anything, testPrincipal, id, mock.Anything).Return(nil, services.ErrForbidden).Once()

		w := tr.do(http.MethodPut, "/jobs/"+id.Hex(), map[string]any{"jobTitle": "New"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("update empty body", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.jobs.On("UpdateJob", mock.Anything, testPrincipal, id, mock.Anything).
			Return(nil, fmt.Errorf("%w: no fields to update", services.ErrValidation)).Once()

		w := tr.do(http.MethodPut, "/jobs/"+id.Hex(), map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Validation failed", decodeError(t, w)["error"])
	})

	t.Run("delete", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.jobs.On("DeleteJob", mock.Anything, testPrincipal, id).Return(nil).Once()

		w := tr.do(http.MethodDelete, "/jobs/"+id.Hex(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Job deleted successfully")
	})

	t.Run("delete missing", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.jobs.On("DeleteJob", mock.Anything, testPrincipal, id).Return(services.ErrJobNotFound).Once()

		w := tr.do(http.MethodDelete, "/jobs/"+id.Hex(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDashboard_EmptyIsArray(t *testing.T) {
	tr := setupTestRouter(true)
	tr.jobs.On("Dashboard", mock.Anything, testPrincipal).Return(nil, nil).Once()

	w := tr.do(http.MethodGet, "/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSubmitApplication(t *testing.T) {
	jobID := primitive.NewObjectID()

	t.Run("success", func(t *testing.T) {
		tr := setupTestRouter(true)
		resp := &dto.ApplicationResponse{ID: primitive.NewObjectID(), Status: models.ApplicationStatusPending, JobTitle: "Go Developer"}
		tr.apps.On("Submit", mock.Anything, testPrincipal, &dto.SubmitApplicationRequest{JobID: jobID.Hex(), CoverLetter: "hi"}).Return(resp, nil).Once()

		w := tr.do(http.MethodPost, "/applications", map[string]any{"jobId": jobID.Hex(), "coverLetter": "hi"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("already applied", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.apps.On("Submit", mock.Anything, testPrincipal, mock.Anything).Return(nil, services.ErrAlreadyApplied).Once()

		w := tr.do(http.MethodPost, "/applications", map[string]any{"jobId": jobID.Hex()})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "You have already applied for this job", decodeError(t, w)["error"])
	})

	t.Run("invalid job id", func(t *testing.T) {
		tr := setupTestRouter(true)
		w := tr.do(http.MethodPost, "/applications", map[string]any{"jobId": "123"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "jobId")
		tr.apps.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("job missing", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.apps.On("Submit", mock.Anything, testPrincipal, mock.Anything).Return(nil, services.ErrJobNotFound).Once()

		w := tr.do(http.MethodPost, "/applications", map[string]any{"jobId": jobID.Hex()})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListApplications(t *testing.T) {
	t.Run("passes job filter", func(t *testing.T) {
		tr := setupTestRouter(true)
		jobID := primitive.NewObjectID()
		tr.apps.On("List", mock.Anything, testPrincipal, &dto.ListApplicationsRequest{JobID: jobID.Hex()}).
			Return([]dto.ApplicationResponse{}, nil).Once()

		w := tr.do(http.MethodGet, "/applications?jobId="+jobID.Hex(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("bad job filter", func(t *testing.T) {
		tr := setupTestRouter(true)
		w := tr.do(http.MethodGet, "/applications?jobId=xyz", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("foreign job", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.apps.On("List", mock.Anything, testPrincipal, mock.Anything).Return(nil, services.ErrForbidden).Once()

		w := tr.do(http.MethodGet, "/applications?jobId="+primitive.NewObjectID().Hex(), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestApplicationByID(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("get forbidden", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.apps.On("Get", mock.Anything, testPrincipal, id).Return(nil, services.ErrForbidden).Once()

		w := tr.do(http.MethodGet, "/applications/"+id.Hex(), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.apps.On("Get", mock.Anything, testPrincipal, id).Return(nil, services.ErrApplicationNotFound).Once()

		w := tr.do(http.MethodGet, "/applications/"+id.Hex(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Application not found", decodeError(t, w)["error"])
	})

	t.Run("patch status", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.apps.On("UpdateStatus", mock.Anything, testPrincipal, id, models.ApplicationStatusInterview).
			Return(&dto.ApplicationResponse{ID: id, Status: models.ApplicationStatusInterview}, nil).Once()

		w := tr.do(http.MethodPatch, "/applications/"+id.Hex(), map[string]any{"status": "interview"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"interview"`)
	})

	t.Run("patch unknown status", func(t *testing.T) {
		tr := setupTestRouter(true)
		w := tr.do(http.MethodPatch, "/applications/"+id.Hex(), map[string]any{"status": "accepted"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		tr.apps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("patch bad id", func(t *testing.T) {
		tr := setupTestRouter(true)
		w := tr.do(http.MethodPatch, "/applications/nope", map[string]any{"status": "hired"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid application ID format", decodeError(t, w)["error"])
	})
}

func TestUsersMe(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.users.On("GetMe", mock.Anything, testPrincipal).Return(&models.User{ID: primitive.NewObjectID(), Role: models.RoleJobSeeker}, nil).Once()

		w := tr.do(http.MethodGet, "/users/me", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"job_seeker"`)
	})

	t.Run("admin role rejected", func(t *testing.T) {
		tr := setupTestRouter(true)
		w := tr.do(http.MethodPut, "/users/me", map[string]any{"role": "admin"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		tr.users.AssertNotCalled(t, "UpdateMe", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("save missing job", func(t *testing.T) {
		tr := setupTestRouter(true)
		jobID := primitive.NewObjectID()
		tr.users.On("SaveJob", mock.Anything, testPrincipal, jobID).Return(nil, services.ErrJobNotFound).Once()

		w := tr.do(http.MethodPut, "/users/me/saved-jobs/"+jobID.Hex(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unsave", func(t *testing.T) {
		tr := setupTestRouter(true)
		jobID := primitive.NewObjectID()
		tr.users.On("UnsaveJob", mock.Anything, testPrincipal, jobID).Return(&models.User{}, nil).Once()

		w := tr.do(http.MethodDelete, "/users/me/saved-jobs/"+jobID.Hex(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("saved jobs empty", func(t *testing.T) {
		tr := setupTestRouter(true)
		tr.users.On("ListSavedJobs", mock.Anything, testPrincipal).Return(nil, nil).Once()

		w := tr.do(http.MethodGet, "/users/me/saved-jobs", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		tr := setupTestRouter(false)
		w := tr.do(http.MethodGet, "/users/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestReadiness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ready-ok", handlers.Readiness(map[string]handlers.PingFunc{
		"mongo": func(context.Context) error { return nil },
	}))
	router.GET("/ready-down", handlers.Readiness(map[string]handlers.PingFunc{
		"mongo": func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("connection refused") },
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready-ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"mongo":"ok"}}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready-down", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"mongo":"ok","redis":"connection refused"}}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handlers.HealthCheck)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestApplicationLifecycle_RecruiterMovesSeekerToInterview(t *testing.T) {
	tr := setupTestRouter(true)
	recruiter := models.Principal{ExternalID: "ext_recruiter", Email: "hr@acme.test"}
	seeker := models.Principal{ExternalID: "ext_seeker", Email: "sam@seeker.test"}
	job := &models.Job{ID: primitive.NewObjectID(), JobTitle: "Go Developer", SalaryMin: 50000, SalaryMax: 80000, Location: "Remote"}
	appID := primitive.NewObjectID()
	application := func(status models.ApplicationStatus) dto.ApplicationResponse {
		return dto.ApplicationResponse{ID: appID, Status: status, JobTitle: job.JobTitle, Location: job.Location}
	}

	tr.jobs.On("CreateJob", mock.Anything, recruiter, mock.MatchedBy(func(r *dto.CreateJobRequest) bool {
		return r.JobTitle == "Go Developer" && *r.SalaryMin == 50000 && *r.SalaryMax == 80000 && r.Location == "Remote"
	})).Return(job, nil).Once()
	pending := application(models.ApplicationStatusPending)
	tr.apps.On("Submit", mock.Anything, seeker, mock.MatchedBy(func(r *dto.SubmitApplicationRequest) bool {
		return r.JobID == job.ID.Hex()
	})).Return(&pending, nil).Once()
	tr.apps.On("List", mock.Anything, seeker, mock.Anything).Return([]dto.ApplicationResponse{pending}, nil).Once()
	interview := application(models.ApplicationStatusInterview)
	tr.apps.On("UpdateStatus", mock.Anything, recruiter, appID, models.ApplicationStatusInterview).Return(&interview, nil).Once()
	tr.apps.On("List", mock.Anything, seeker, mock.Anything).Return([]dto.ApplicationResponse{interview}, nil).Once()

	listAsSeeker := func() []dto.ApplicationResponse {
		tr.acting = seeker
		w := tr.do(http.MethodGet, "/applications", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var apps []dto.ApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apps))
		return apps
	}

	tr.acting = recruiter
	body := validCreateJobBody()
	body["salaryMin"], body["salaryMax"] = 50000, 80000
	w := tr.do(http.MethodPost, "/jobs", body)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.JobCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.Data)
	assert.Equal(t, job.ID, created.Data.ID)

	tr.acting = seeker
	w = tr.do(http.MethodPost, "/applications", map[string]any{"jobId": created.Data.ID.Hex()})
	require.Equal(t, http.StatusCreated, w.Code)

	apps := listAsSeeker()
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationStatusPending, apps[0].Status)
	assert.Equal(t, "Go Developer", apps[0].JobTitle)

	tr.acting = recruiter
	w = tr.do(http.MethodPatch, "/applications/"+appID.Hex(), map[string]any{"status": "interview"})
	require.Equal(t, http.StatusOK, w.Code)

	apps = listAsSeeker()
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationStatusInterview, apps[0].Status)

	tr.jobs.AssertExpectations(t)
	tr.apps.AssertExpectations(t)
}

func TestSubmitApplication_InvalidCustomEmail(t *testing.T) {
	tr := setupTestRouter(true)

	w := tr.do(http.MethodPost, "/applications", map[string]any{
		"jobId":        primitive.NewObjectID().Hex(),
		"customFields": map[string]any{"email": "not an address"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
	tr.apps.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}
