package services

import (
	"errors"
	"fmt"
	"strings"

	"jobboard-api/internal/storage"
)

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrUpstream, operation, err)
}

// mapNotFound is MapRepoError with a specific not-found error.
func mapNotFound(err error, notFound error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return notFound
	}
	return MapRepoError(err, operation)
}

const placeholderDomain = "@placeholder"

func placeholderEmail(externalID string) string {
	return "user_" + externalID + placeholderDomain
}

// IsPlaceholderEmail reports whether the address was synthesized and cannot
// receive mail.
func IsPlaceholderEmail(email string) bool {
	return strings.HasSuffix(email, placeholderDomain)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
