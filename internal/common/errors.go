// Package common defines shared constants and sentinel errors used across
// the userkeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Persistence errors. ErrPersist is what the store returns when the
	// durable write keeps failing after retries; the in-memory mutation is
	// still applied (see services.UserService).
	ErrPersist            = errors.New("failed to persist data: check storage quota")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
