package service

import "errors"

// Sentinel errors shared by every service. Handlers map them onto HTTP
// statuses; services wrap them with fmt.Errorf("%w: ...") so the original
// message survives for the response body.
var (
	// ErrValidation marks a client-input failure (blank title, blank
	// ingredient name and so on).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing referenced entity (author, category,
	// recipe, ...).
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks an authorization failure.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict marks a uniqueness violation that could not be recovered.
	ErrConflict = errors.New("conflict")
)
