package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jobboard-api/config"
	"jobboard-api/internal/cache"
	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobsCacheNamespace is bumped whenever the job collection changes.
const JobsCacheNamespace = "jobs"

type jobService struct {
	jobs     storage.JobRepository
	identity IdentityService
	cache    cache.Cache
	cfg      config.JobsConfig
	log      logrus.FieldLogger
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobs storage.JobRepository, identity IdentityService, c cache.Cache, cfg config.JobsConfig, log logrus.FieldLogger) JobService {
	if c == nil {
		c = cache.Noop{}
	}
	return &jobService{jobs: jobs, identity: identity, cache: c, cfg: cfg, log: log}
}

// NormalizePage clamps page and limit into the supported range.
func NormalizePage(req *dto.ListJobsRequest, cfg config.JobsConfig) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = cfg.DefaultLimit
	}
	if cfg.MaxLimit > 0 && req.Limit > cfg.MaxLimit {
		req.Limit = cfg.MaxLimit
	}
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ListJobs runs the search, serving repeated queries from the cache.
func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) (*dto.JobListResponse, error) {
	q := *req
	NormalizePage(&q, s.cfg)

	key, cacheable := s.listCacheKey(ctx, &q)
	if cacheable {
		var cached dto.JobListResponse
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.log.WithError(err).Warn("job list cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	jobs, total, err := s.jobs.Search(ctx, &q)
	if err != nil {
		return nil, MapRepoError(err, "listing jobs")
	}

	resp := &dto.JobListResponse{
		Jobs: jobs,
		Pagination: dto.Pagination{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
			Pages: TotalPages(total, q.Limit),
		},
	}

	if cacheable {
		if err := s.cache.SetJSON(ctx, key, resp, s.cfg.CacheTTL); err != nil {
			s.log.WithError(err).Warn("job list cache write failed")
		}
	}
	return resp, nil
}

func (s *jobService) listCacheKey(ctx context.Context, q *dto.ListJobsRequest) (string, bool) {
	if s.cfg.CacheTTL <= 0 {
		return "", false
	}
	// Posted-date cutoffs move with the clock.
	if q.RecentlyPosted || q.PostedDate != "" {
		return "", false
	}
	gen, err := s.cache.Generation(ctx, JobsCacheNamespace)
	if err != nil {
		s.log.WithError(err).Warn("job list cache generation read failed")
		return "", false
	}
	raw, err := json.Marshal(q)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("jobs:list:%d:%s", gen, raw), true
}

func (s *jobService) invalidateList(ctx context.Context) {
	if err := s.cache.Bump(ctx, JobsCacheNamespace); err != nil {
		s.log.WithError(err).Warn("job list cache invalidation failed")
	}
}

// CreateJob resolves the posting principal (creating a recruiter on first
// sight) and stores the job under that user.
func (s *jobService) CreateJob(ctx context.Context, p models.Principal, req *dto.CreateJobRequest) (*models.Job, error) {
	user, err := s.identity.Resolve(ctx, p, ResolveHints{
		Email: req.ContactEmail,
		Name:  firstNonEmpty(req.CompanyName, "Recruiter"),
		Role:  models.RoleRecruiter,
	})
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleRecruiter && user.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: only recruiters can post jobs", ErrForbidden)
	}

	job := &models.Job{
		Recruiter:       user.ID,
		LegacyUserID:    p.ExternalID,
		JobTitle:        req.JobTitle,
		CompanyName:     req.CompanyName,
		CompanyLogo:     req.CompanyLogo,
		JobDescription:  req.JobDescription,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Category:        req.Category,
		RequiredSkills:  req.RequiredSkills,
		Location:        req.Location,
		SalaryMin:       *req.SalaryMin,
		SalaryMax:       *req.SalaryMax,
		IsTestRequired:  req.IsTestRequired,
		Openings:        req.Openings,
		ContactEmail:    req.ContactEmail,
	}
	if req.Deadline != nil {
		d := req.Deadline.UTC()
		job.Deadline = &d
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, MapRepoError(err, "creating job")
	}
	s.invalidateList(ctx)

	s.log.WithFields(logrus.Fields{"job_id": created.ID.Hex(), "user_id": user.ID.Hex()}).Info("job created")
	return created, nil
}

func (s *jobService) GetJob(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	job, err := s.jobs.IncrementViews(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrJobNotFound, "fetching job")
	}
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, p models.Principal, id primitive.ObjectID, req *dto.UpdateJobRequest) (*models.Job, error) {
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if _, err := s.ownedJob(ctx, p, id); err != nil {
		return nil, err
	}

	updated, err := s.jobs.Update(ctx, id, req)
	if err != nil {
		return nil, mapNotFound(err, ErrJobNotFound, "updating job")
	}
	s.invalidateList(ctx)
	return updated, nil
}

func (s *jobService) DeleteJob(ctx context.Context, p models.Principal, id primitive.ObjectID) error {
	if _, err := s.ownedJob(ctx, p, id); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return mapNotFound(err, ErrJobNotFound, "deleting job")
	}
	s.invalidateList(ctx)

	s.log.WithField("job_id", id.Hex()).Info("job deleted")
	return nil
}

// Dashboard lists the caller's jobs. An unknown principal gets an empty list.
func (s *jobService) Dashboard(ctx context.Context, p models.Principal) ([]models.Job, error) {
	user, err := s.identity.Lookup(ctx, p)
	if errors.Is(err, ErrUserNotFound) {
		return []models.Job{}, nil
	}
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListByOwner(ctx, user.ID, p.ExternalID)
	if err != nil {
		return nil, MapRepoError(err, "listing dashboard jobs")
	}
	return jobs, nil
}

// ownedJob returns the job when the principal's user owns it.
func (s *jobService) ownedJob(ctx context.Context, p models.Principal, id primitive.ObjectID) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrJobNotFound, "fetching job")
	}

	user, err := s.identity.Lookup(ctx, p)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	if !job.OwnedBy(user.ID) {
		s.log.WithFields(logrus.Fields{"job_id": id.Hex(), "user_id": user.ID.Hex()}).Warn("non-owner attempted job mutation")
		return nil, ErrForbidden
	}
	return job, nil
}
