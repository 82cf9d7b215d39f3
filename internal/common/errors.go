// Package common defines shared sentinel errors used across the registry.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors raised at the caller-facing boundary, before any
	// statement reaches the store.
	ErrValidation = errors.New("validation error")

	// Storage error kinds classified from driver errors so callers can
	// present actionable messages.
	ErrConnectionFailed = errors.New("database connection failed")
	ErrAuthFailed       = errors.New("database authentication failed")
	ErrSchemaMissing    = errors.New("database schema missing")
	ErrDuplicateNumber  = errors.New("aadhaar number already exists")
)
