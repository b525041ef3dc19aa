package services

import (
	"errors"
	"fmt"
)

// Define common service errors
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrNotFound        = errors.New("resource not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrUpstream        = errors.New("upstream failure") // store or mail relay
)

// Specific forms; each matches its parent with errors.Is.
var (
	ErrAlreadyApplied      = fmt.Errorf("%w: already applied to this job", ErrConflict)
	ErrJobNotFound         = fmt.Errorf("%w: job not found", ErrNotFound)
	ErrApplicationNotFound = fmt.Errorf("%w: application not found", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrUserCreationFailed  = fmt.Errorf("%w: failed to create user", ErrUpstream)
)
