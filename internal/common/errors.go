// Package common defines shared sentinel errors used across the cityride
// core. Callers should use errors.Is to match these values.
//
// Storage failures have no sentinel on purpose: best-effort persistence
// means the stores log and swallow them, so nothing upstream ever matches
// on one.
package common

import "errors"

var (
	// Validation errors: caller supplied incomplete input
	// (empty credentials, empty booking stops).
	ErrValidation = errors.New("validation error")

	// Authorization errors: operation requires an active session.
	ErrUnauthorized = errors.New("unauthorized")
)
