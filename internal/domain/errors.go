package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service and form functions when input fails
// business rule validation (e.g. missing required field, missing image).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an operation is rejected because of the
// current editing state (e.g. switching category while updating a record
// created through a specialized form).
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("conflict")
