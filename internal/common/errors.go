// Package common defines sentinel error kinds and small random helpers shared
// by the user registry packages. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Validation errors (blank names, malformed phone, malformed salt:hash...).
	ErrValidation = errors.New("validation error")
)
