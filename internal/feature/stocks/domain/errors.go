// Package domain defines domain-level errors for the stocks feature.
package domain

import "errors"

// Domain errors for stock record operations.
// Every storage-layer failure is mapped to one of these before it reaches a handler.
var (
	// ErrValidation indicates required input is missing or malformed.
	// Client-correctable; maps to a 400-class response.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates that no stock record exists with the referenced id.
	// Maps to a 404-class response.
	ErrNotFound = errors.New("stock record not found")

	// ErrStorageUnavailable indicates a database connection or query failure.
	// Not client-correctable; callers should retry after backoff.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
