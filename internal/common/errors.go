// Package common provides shared utilities and types used across the
// application.
package common

import "errors"

// Boundary errors. The core never surfaces these; they exist for the
// editing collaborators, which validate input before calling in.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrNoteTooLong   = errors.New("note exceeds maximum length")
)
