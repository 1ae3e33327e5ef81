package users

import (
	"context"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
)

// Repository describes durable storage for the whole user collection.
// Implementations persist the collection as a single snapshot; partial
// writes are not part of the contract.
type Repository interface {
	// Load returns the persisted collection. Missing or unreadable state
	// yields an empty collection; Load never fails.
	Load(ctx context.Context) []models.User

	// Save replaces the persisted collection. A failing write is reported
	// as common.ErrPersist.
	Save(ctx context.Context, users []models.User) error

	// Clear removes the persisted state. Errors are swallowed and logged.
	Clear(ctx context.Context)

	// IsAvailable probes the underlying store with a throwaway write and
	// reports whether persistence can be expected to work.
	IsAvailable(ctx context.Context) bool
}
