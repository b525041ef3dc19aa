package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"

	"github.com/sirupsen/logrus"
)

type identityService struct {
	users storage.UserRepository
	log   logrus.FieldLogger
	now   func() time.Time
}

// NewIdentityService creates a new instance of IdentityService.
func NewIdentityService(users storage.UserRepository, log logrus.FieldLogger) IdentityService {
	return &identityService{users: users, log: log, now: time.Now}
}

func (s *identityService) Lookup(ctx context.Context, p models.Principal) (*models.User, error) {
	if p.ExternalID == "" {
		return nil, ErrUnauthenticated
	}
	user, err := s.users.GetByExternalID(ctx, p.ExternalID)
	if err != nil {
		return nil, mapNotFound(err, ErrUserNotFound, "looking up user")
	}
	return user, nil
}

// Resolve looks the principal up by external id, then by its verified email
// claim (re-linking a rotated external id), and finally creates a new user.
// Hint emails are only used for creation and never re-link an existing user.
func (s *identityService) Resolve(ctx context.Context, p models.Principal, hints ResolveHints) (*models.User, error) {
	if p.ExternalID == "" {
		return nil, ErrUnauthenticated
	}
	log := s.log.WithField("external_id", p.ExternalID)

	user, err := s.users.GetByExternalID(ctx, p.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, MapRepoError(err, "looking up user by external id")
	}

	if claimed := normalizeEmail(p.Email); claimed != "" {
		user, err = s.users.GetByEmail(ctx, claimed)
		switch {
		case err == nil:
			log.WithField("user_id", user.ID.Hex()).Info("re-linking user to rotated external id")
			relinked, err := s.users.UpdateExternalID(ctx, user.ID, p.ExternalID)
			if err != nil {
				return nil, MapRepoError(err, "re-linking user external id")
			}
			return relinked, nil
		case !errors.Is(err, storage.ErrNotFound):
			return nil, MapRepoError(err, "looking up user by email")
		}
	}

	return s.create(ctx, p, hints, normalizeEmail(firstNonEmpty(p.Email, hints.Email)), log)
}

func (s *identityService) create(ctx context.Context, p models.Principal, hints ResolveHints, email string, log logrus.FieldLogger) (*models.User, error) {
	role := hints.Role
	if role == "" {
		role = models.RoleJobSeeker
	}
	if email == "" {
		email = placeholderEmail(p.ExternalID)
	}

	newUser := func(email string) *models.User {
		return &models.User{
			ExternalID: p.ExternalID,
			Email:      email,
			Name:       firstNonEmpty(p.Name, hints.Name),
			Role:       role,
			Settings:   models.DefaultSettings(),
		}
	}

	created, err := s.users.Create(ctx, newUser(email))
	if err == nil {
		log.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "role": role}).Info("created user for new principal")
		return created, nil
	}
	if !errors.Is(err, storage.ErrConflict) {
		log.WithError(err).Error("failed to create user")
		return nil, fmt.Errorf("%w: %w", ErrUserCreationFailed, err)
	}

	// A concurrent request may have created the same principal.
	if existing, lookupErr := s.users.GetByExternalID(ctx, p.ExternalID); lookupErr == nil {
		return existing, nil
	}

	retryEmail := "user_" + p.ExternalID + "_" + strconv.FormatInt(s.now().UnixMilli(), 10) + placeholderDomain
	log.WithField("email", email).Warn("email already taken; retrying user creation with placeholder")
	created, err = s.users.Create(ctx, newUser(retryEmail))
	if err != nil {
		log.WithError(err).Error("failed to create user on retry")
		return nil, fmt.Errorf("%w: %w", ErrUserCreationFailed, err)
	}
	return created, nil
}
