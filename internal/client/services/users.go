// Package services owns the authoritative in-memory user collection. Every
// mutation funnels through UserService: validate, apply, persist. Validation
// failures and not-found conditions come back as values; nothing in here
// panics across the service boundary.
package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
	"github.com/dmitrijs2005/userkeeper/internal/client/query"
	"github.com/dmitrijs2005/userkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/userkeeper/internal/client/validation"
	"github.com/dmitrijs2005/userkeeper/internal/common"
	"github.com/dmitrijs2005/userkeeper/internal/logging"
)

// UserService is the user store. It is safe for concurrent use: the REPL
// goroutine, the search debouncer and the resync watcher may all touch it.
//
// On a failing durable write the in-memory mutation is kept and the service
// is marked dirty; the next successful save (including the periodic resync)
// rewrites the full snapshot and converges persisted state again.
type UserService struct {
	repo      users.Repository
	validator *validation.Validator
	log       logging.Logger

	mu         sync.Mutex
	users      []models.User
	memoryOnly bool
	dirty      bool

	// test seams
	now       func() time.Time
	newID     func() string
	retryBase time.Duration
}

func NewUserService(repo users.Repository, va *validation.Validator, log logging.Logger) *UserService {
	return &UserService{
		repo:      repo,
		validator: va,
		log:       log,
		users:     []models.User{},
		now:       time.Now,
		newID:     uuid.NewString,
		retryBase: 100 * time.Millisecond,
	}
}

// Load hydrates the collection from the repository. When the underlying
// store is unavailable the service degrades to memory-only operation with a
// logged warning instead of failing every mutation later.
func (s *UserService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.repo.IsAvailable(ctx) {
		s.memoryOnly = true
		s.log.Warn(ctx, "storage unavailable, keeping users in memory only")
		return
	}
	s.users = s.repo.Load(ctx)
	s.log.Info(ctx, "users loaded", "count", len(s.users))
}

// Create validates the input, appends a new record and persists the
// collection. Validation failures are returned as a slice and leave the
// collection untouched. A persistence failure keeps the new record in
// memory and is reported via the returned error (wrapping common.ErrPersist).
func (s *UserService) Create(ctx context.Context, in models.CreateUserInput) (*models.User, []models.ValidationError, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := s.validator.ValidateCreate(in, s.emailSetLocked("")); len(errs) > 0 {
		return nil, errs, nil
	}

	now := s.now()
	u := models.User{
		ID:        s.newID(),
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users = append(s.users, u)

	if err := s.persistLocked(ctx); err != nil {
		return &u, nil, fmt.Errorf("failed to add user: %w", err)
	}
	return &u, nil, nil
}

// Update merges the provided fields into an existing record. Fields left nil
// are preserved. Uniqueness is checked against all other records, so saving
// a record with its own unchanged email succeeds.
func (s *UserService) Update(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, []models.ValidationError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return nil, nil, common.ErrorNotFound
	}
	current := s.users[idx]

	if errs := s.validator.ValidateUpdate(in, s.emailSetLocked(id), current.Email); len(errs) > 0 {
		return nil, errs, nil
	}

	if in.Name != nil {
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		current.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	current.UpdatedAt = s.now()
	s.users[idx] = current

	if err := s.persistLocked(ctx); err != nil {
		return &current, nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &current, nil, nil
}

// Delete removes the record with the given id and persists the collection.
func (s *UserService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return common.ErrorNotFound
	}
	s.users = slices.Delete(s.users, idx, idx+1)

	if err := s.persistLocked(ctx); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ClearAll empties the collection and persists the empty state.
func (s *UserService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []models.User{}
	if err := s.persistLocked(ctx); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return nil
}

// GetByID returns a single record by id.
func (s *UserService) GetByID(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return models.User{}, common.ErrorNotFound
	}
	return s.users[idx], nil
}

// List returns a copy of the full collection in its current order.
func (s *UserService) List() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Count returns the number of records.
func (s *UserService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Search validates the query and derives the filtered view plus its counts.
// An over-long query is rejected with a field-scoped error and no view.
func (s *UserService) Search(queryStr string) ([]models.User, models.Stats, []models.ValidationError) {
	if errs := s.validator.ValidateSearchQuery(queryStr); len(errs) > 0 {
		return nil, models.Stats{}, errs
	}

	all := s.List()
	filtered := query.Filter(all, queryStr)
	return filtered, models.Stats{Total: len(all), Filtered: len(filtered)}, nil
}

// Dirty reports whether in-memory state has diverged from persisted state.
func (s *UserService) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// MemoryOnly reports whether the service runs without durable storage.
func (s *UserService) MemoryOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memoryOnly
}

// Resync flushes the snapshot again if a previous write failed.
func (s *UserService) Resync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	return s.persistLocked(ctx)
}

// StartResyncWatcher periodically re-attempts the flush after failed writes.
// It blocks until ctx is done; run it on its own goroutine.
func (s *UserService) StartResyncWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Resync(ctx); err != nil {
				s.log.Warn(ctx, "resync attempt failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// persistLocked writes the current snapshot with a bounded retry. The caller
// must hold s.mu. In memory-only mode it is a no-op.
func (s *UserService) persistLocked(ctx context.Context) error {
	if s.memoryOnly {
		return nil
	}

	snapshot := make([]models.User, len(s.users))
	copy(snapshot, s.users)

	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(s.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, snapshot); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		s.dirty = true
		s.log.Error(ctx, "persist failed, keeping in-memory state", "error", err)
		return err
	}
	s.dirty = false
	return nil
}

func (s *UserService) indexOfLocked(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// emailSetLocked builds the lowercased-email set, excluding the record with
// excludeID (pass "" to include everyone).
func (s *UserService) emailSetLocked(excludeID string) map[string]struct{} {
	set := make(map[string]struct{}, len(s.users))
	for _, u := range s.users {
		if excludeID != "" && u.ID == excludeID {
			continue
		}
		set[strings.ToLower(u.Email)] = struct{}{}
	}
	return set
}
