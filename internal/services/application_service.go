package services

import (
	"context"
	"errors"
	"fmt"

	"jobboard-api/internal/cache"
	"jobboard-api/internal/models"
	"jobboard-api/internal/notify"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Display placeholders for list views when neither the job nor the snapshot
// has a value.
const (
	FallbackJobTitle    = "Job Title Not Available"
	FallbackCompanyName = "Company Name Not Available"
	FallbackLocation    = "Location Not Available"
	FallbackJobType     = "Full-time"
)

type applicationService struct {
	apps     storage.ApplicationRepository
	jobs     storage.JobRepository
	users    storage.UserRepository
	tx       storage.TxRunner
	identity IdentityService
	notifier notify.Notifier
	cache    cache.Cache
	log      logrus.FieldLogger
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(
	apps storage.ApplicationRepository,
	jobs storage.JobRepository,
	users storage.UserRepository,
	tx storage.TxRunner,
	identity IdentityService,
	notifier notify.Notifier,
	c cache.Cache,
	log logrus.FieldLogger,
) ApplicationService {
	if c == nil {
		c = cache.Noop{}
	}
	return &applicationService{
		apps:     apps,
		jobs:     jobs,
		users:    users,
		tx:       tx,
		identity: identity,
		notifier: notifier,
		cache:    c,
		log:      log,
	}
}

// Submit creates an application for a job seeker, links it from the job and
// notifies both parties.
func (s *applicationService) Submit(ctx context.Context, p models.Principal, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	user, err := s.identity.Resolve(ctx, p, ResolveHints{Role: models.RoleJobSeeker})
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleJobSeeker {
		return nil, fmt.Errorf("%w: only job seekers can apply", ErrForbidden)
	}

	jobID, err := primitive.ObjectIDFromHex(req.JobID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid job id", ErrValidation)
	}
	log := s.log.WithFields(logrus.Fields{"job_id": jobID.Hex(), "user_id": user.ID.Hex()})

	// 1. Duplicate check
	_, err = s.apps.FindByJobAndApplicant(ctx, jobID, user.ID)
	if err == nil {
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, MapRepoError(err, "checking existing application")
	}

	// 2. Job must exist
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapNotFound(err, ErrJobNotFound, "fetching job for application")
	}

	// 3-4. Create and link
	app := buildSnapshot(user, job, req)
	var created *models.Application
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.apps.Create(txCtx, app)
		if err != nil {
			return err
		}
		if err := s.jobs.AppendApplication(txCtx, job.ID, created.ID); err != nil {
			if !s.tx.Transactional() {
				s.compensate(ctx, created.ID, log)
			}
			return err
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			return nil, ErrAlreadyApplied
		case errors.Is(err, storage.ErrNotFound):
			return nil, ErrJobNotFound
		default:
			log.WithError(err).Error("failed to store application")
			return nil, MapRepoError(err, "creating application")
		}
	}
	s.invalidateJobList(ctx)
	log.WithField("application_id", created.ID.Hex()).Info("application submitted")

	s.notifySubmitted(ctx, created, job, log)

	resp := buildApplicationResponse(created, job, user)
	return &resp, nil
}

func (s *applicationService) compensate(ctx context.Context, id primitive.ObjectID, log logrus.FieldLogger) {
	if err := s.apps.Delete(ctx, id); err != nil {
		log.WithError(err).WithField("application_id", id.Hex()).Error("failed to roll back unlinked application")
	}
}

func (s *applicationService) invalidateJobList(ctx context.Context) {
	if err := s.cache.Bump(ctx, JobsCacheNamespace); err != nil {
		s.log.WithError(err).Warn("job list cache invalidation failed")
	}
}

// notifySubmitted is best effort; failures never reach the caller.
func (s *applicationService) notifySubmitted(ctx context.Context, app *models.Application, job *models.Job, log logrus.FieldLogger) {
	applicantEmail := app.Email
	if IsPlaceholderEmail(applicantEmail) {
		applicantEmail = ""
	}
	err := s.notifier.ApplicationSubmitted(ctx, notify.ApplicationSubmitted{
		JobTitle:       job.JobTitle,
		CompanyName:    job.CompanyName,
		ContactEmail:   job.ContactEmail,
		ApplicantName:  firstNonEmpty(app.Name, "Applicant"),
		ApplicantEmail: applicantEmail,
		CoverLetter:    app.CoverLetter,
	})
	if err != nil {
		log.WithError(err).Warn("application notification failed")
	}
}

// buildSnapshot copies display values into the application. Custom fields
// override the profile for name and email; job values are copied verbatim.
func buildSnapshot(user *models.User, job *models.Job, req *dto.SubmitApplicationRequest) *models.Application {
	custom := req.CustomFields
	if custom == nil {
		custom = &models.ApplicationFields{}
	}
	return &models.Application{
		Job:          job.ID,
		Applicant:    user.ID,
		CoverLetter:  req.CoverLetter,
		Resume:       req.Resume,
		CustomFields: req.CustomFields,
		Status:       models.ApplicationStatusPending,
		Name:         firstNonEmpty(custom.Name, user.Name),
		Email:        firstNonEmpty(custom.Email, user.Email),
		Phone:        custom.Phone,
		Skills:       custom.Skills,
		Bio:          custom.Bio,
		Education:    custom.Education,
		JobTitle:     job.JobTitle,
		CompanyName:  job.CompanyName,
		Location:     job.Location,
	}
}

// List returns the applications visible to the caller's role, newest first.
func (s *applicationService) List(ctx context.Context, p models.Principal, req *dto.ListApplicationsRequest) ([]dto.ApplicationResponse, error) {
	user, err := s.identity.Resolve(ctx, p, ResolveHints{Role: models.RoleJobSeeker})
	if err != nil {
		return nil, err
	}

	var jobFilter *primitive.ObjectID
	if req != nil && req.JobID != "" {
		id, err := primitive.ObjectIDFromHex(req.JobID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid job id", ErrValidation)
		}
		jobFilter = &id
	}

	var filter storage.ApplicationFilter
	switch user.Role {
	case models.RoleJobSeeker:
		filter.ApplicantID = user.ID
	case models.RoleRecruiter:
		if jobFilter != nil {
			job, err := s.jobs.GetByID(ctx, *jobFilter)
			if err != nil {
				return nil, mapNotFound(err, ErrJobNotFound, "fetching job for application list")
			}
			if !job.OwnedBy(user.ID) {
				return nil, ErrForbidden
			}
			filter.JobIDs = []primitive.ObjectID{job.ID}
		} else {
			ids, err := s.jobs.ListIDsByRecruiter(ctx, user.ID)
			if err != nil {
				return nil, MapRepoError(err, "listing recruiter jobs")
			}
			filter.JobIDs = ids
			if filter.JobIDs == nil {
				filter.JobIDs = []primitive.ObjectID{}
			}
		}
	case models.RoleAdmin:
		if jobFilter != nil {
			filter.JobIDs = []primitive.ObjectID{*jobFilter}
		}
	default:
		return nil, ErrForbidden
	}

	apps, err := s.apps.List(ctx, filter)
	if err != nil {
		return nil, MapRepoError(err, "listing applications")
	}
	return s.join(ctx, apps)
}

// Get returns one application to its applicant, the owning recruiter or an admin.
func (s *applicationService) Get(ctx context.Context, p models.Principal, id primitive.ObjectID) (*dto.ApplicationResponse, error) {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrApplicationNotFound, "fetching application")
	}

	user, err := s.identity.Lookup(ctx, p)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	job, err := s.optionalJob(ctx, app.Job)
	if err != nil {
		return nil, err
	}

	allowed := user.Role == models.RoleAdmin ||
		app.Applicant == user.ID ||
		(job != nil && job.OwnedBy(user.ID))
	if !allowed {
		return nil, ErrForbidden
	}

	applicant := user
	if app.Applicant != user.ID {
		applicant, err = s.optionalUser(ctx, app.Applicant)
		if err != nil {
			return nil, err
		}
	}

	resp := buildApplicationResponse(app, job, applicant)
	return &resp, nil
}

// UpdateStatus lets the owner of the application's job set any status.
func (s *applicationService) UpdateStatus(ctx context.Context, p models.Principal, id primitive.ObjectID, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	if _, err := models.ParseApplicationStatus(string(status)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrApplicationNotFound, "fetching application")
	}

	user, err := s.identity.Lookup(ctx, p)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	job, err := s.optionalJob(ctx, app.Job)
	if err != nil {
		return nil, err
	}
	if job == nil || !job.OwnedBy(user.ID) {
		s.log.WithFields(logrus.Fields{"application_id": id.Hex(), "user_id": user.ID.Hex()}).Warn("non-owner attempted status update")
		return nil, ErrForbidden
	}

	updated, err := s.apps.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, mapNotFound(err, ErrApplicationNotFound, "updating application status")
	}
	s.log.WithFields(logrus.Fields{"application_id": id.Hex(), "status": status}).Info("application status updated")

	applicant, err := s.optionalUser(ctx, updated.Applicant)
	if err != nil {
		return nil, err
	}
	resp := buildApplicationResponse(updated, job, applicant)
	return &resp, nil
}

func (s *applicationService) optionalJob(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, MapRepoError(err, "fetching application job")
	}
	return job, nil
}

func (s *applicationService) optionalUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, MapRepoError(err, "fetching applicant")
	}
	return user, nil
}

// join attaches jobs and applicants with one batch query each.
func (s *applicationService) join(ctx context.Context, apps []models.Application) ([]dto.ApplicationResponse, error) {
	out := make([]dto.ApplicationResponse, 0, len(apps))
	if len(apps) == 0 {
		return out, nil
	}

	jobIDs := make([]primitive.ObjectID, 0, len(apps))
	userIDs := make([]primitive.ObjectID, 0, len(apps))
	for _, a := range apps {
		jobIDs = append(jobIDs, a.Job)
		userIDs = append(userIDs, a.Applicant)
	}

	jobs, err := s.jobs.ListByIDs(ctx, jobIDs)
	if err != nil {
		return nil, MapRepoError(err, "joining application jobs")
	}
	users, err := s.users.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, MapRepoError(err, "joining applicants")
	}

	jobByID := make(map[primitive.ObjectID]*models.Job, len(jobs))
	for i := range jobs {
		jobByID[jobs[i].ID] = &jobs[i]
	}
	userByID := make(map[primitive.ObjectID]*models.User, len(users))
	for i := range users {
		userByID[users[i].ID] = &users[i]
	}

	for i := range apps {
		out = append(out, buildApplicationResponse(&apps[i], jobByID[apps[i].Job], userByID[apps[i].Applicant]))
	}
	return out, nil
}

// buildApplicationResponse fills display fields from the live job, then the
// snapshot, then static placeholders. job and applicant may be nil.
func buildApplicationResponse(app *models.Application, job *models.Job, applicant *models.User) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:             app.ID,
		CoverLetter:    app.CoverLetter,
		Resume:         app.Resume,
		CustomFields:   app.CustomFields,
		ApplicantScore: app.ApplicantScore,
		Status:         app.Status,
		Name:           app.Name,
		Email:          app.Email,
		Phone:          app.Phone,
		Skills:         app.Skills,
		Bio:            app.Bio,
		Education:      app.Education,
		AppliedAt:      app.AppliedAt,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}

	var live models.Job
	if job != nil {
		live = *job
		resp.Job = &dto.JobSummary{
			ID:          job.ID,
			JobTitle:    job.JobTitle,
			CompanyName: job.CompanyName,
			Location:    job.Location,
			JobType:     job.JobType,
			CompanyLogo: job.CompanyLogo,
			SalaryMin:   job.SalaryMin,
			SalaryMax:   job.SalaryMax,
		}
	}
	resp.JobTitle = firstNonEmpty(live.JobTitle, app.JobTitle, FallbackJobTitle)
	resp.CompanyName = firstNonEmpty(live.CompanyName, app.CompanyName, FallbackCompanyName)
	resp.Location = firstNonEmpty(live.Location, app.Location, FallbackLocation)
	resp.JobType = firstNonEmpty(live.JobType, FallbackJobType)
	resp.CompanyLogo = live.CompanyLogo
	resp.SalaryMin = live.SalaryMin
	resp.SalaryMax = live.SalaryMax

	if applicant != nil {
		resp.Applicant = &dto.ApplicantSummary{
			ID:      applicant.ID,
			Name:    applicant.Name,
			Email:   applicant.Email,
			Profile: applicant.Profile,
		}
	}
	return resp
}
