package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. zero-total booking, invalid tour draft).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrForbidden is returned when the acting user may not perform the
// operation (e.g. a company editing another company's tour).
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")
