package services

import (
	"context"
	"fmt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userService struct {
	users    storage.UserRepository
	jobs     storage.JobRepository
	identity IdentityService
	log      logrus.FieldLogger
}

// NewUserService creates a new instance of UserService.
func NewUserService(users storage.UserRepository, jobs storage.JobRepository, identity IdentityService, log logrus.FieldLogger) UserService {
	return &userService{users: users, jobs: jobs, identity: identity, log: log}
}

func (s *userService) me(ctx context.Context, p models.Principal) (*models.User, error) {
	return s.identity.Resolve(ctx, p, ResolveHints{Role: models.RoleJobSeeker})
}

func (s *userService) GetMe(ctx context.Context, p models.Principal) (*models.User, error) {
	return s.me(ctx, p)
}

// UpdateMe applies a partial update. Admin cannot be self-assigned.
func (s *userService) UpdateMe(ctx context.Context, p models.Principal, req *dto.UpdateUserRequest) (*models.User, error) {
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if req.Role != nil && *req.Role != models.RoleJobSeeker && *req.Role != models.RoleRecruiter {
		return nil, fmt.Errorf("%w: role must be job_seeker or recruiter", ErrValidation)
	}

	user, err := s.me(ctx, p)
	if err != nil {
		return nil, err
	}
	updated, err := s.users.Update(ctx, user.ID, req)
	if err != nil {
		return nil, mapNotFound(err, ErrUserNotFound, "updating user")
	}
	if req.Role != nil && *req.Role != user.Role {
		s.log.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "from": user.Role, "to": *req.Role}).Info("user role changed")
	}
	return updated, nil
}

// ListSavedJobs returns saved jobs in the order they were saved. Jobs deleted
// since are skipped.
func (s *userService) ListSavedJobs(ctx context.Context, p models.Principal) ([]models.Job, error) {
	user, err := s.me(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(user.SavedJobs) == 0 {
		return []models.Job{}, nil
	}

	jobs, err := s.jobs.ListByIDs(ctx, user.SavedJobs)
	if err != nil {
		return nil, MapRepoError(err, "listing saved jobs")
	}
	byID := make(map[primitive.ObjectID]models.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	out := make([]models.Job, 0, len(jobs))
	for _, id := range user.SavedJobs {
		if j, ok := byID[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *userService) SaveJob(ctx context.Context, p models.Principal, jobID primitive.ObjectID) (*models.User, error) {
	user, err := s.me(ctx, p)
	if err != nil {
		return nil, err
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, mapNotFound(err, ErrJobNotFound, "fetching job to save")
	}
	updated, err := s.users.AddSavedJob(ctx, user.ID, jobID)
	if err != nil {
		return nil, mapNotFound(err, ErrUserNotFound, "saving job")
	}
	return updated, nil
}

func (s *userService) UnsaveJob(ctx context.Context, p models.Principal, jobID primitive.ObjectID) (*models.User, error) {
	user, err := s.me(ctx, p)
	if err != nil {
		return nil, err
	}
	updated, err := s.users.RemoveSavedJob(ctx, user.ID, jobID)
	if err != nil {
		return nil, mapNotFound(err, ErrUserNotFound, "removing saved job")
	}
	return updated, nil
}
