// Package common defines shared constants and sentinel errors used across
// the client and server layers of the intake system. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Validation errors: a required field is empty or malformed.
	// Raised before any network call is issued.
	ErrValidation = errors.New("validation error")

	// ErrNotSaved marks a local precondition failure: a document operation
	// was attempted against an entry that has no record id yet.
	ErrNotSaved = errors.New("record not saved yet")

	// ErrDuplicateApplication is signalled by the server when a candidate
	// applies twice for the same job. It must be routed to a field-scoped
	// message, not a generic notification.
	ErrDuplicateApplication = errors.New("already applied")
)
