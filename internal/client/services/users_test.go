package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
	"github.com/dmitrijs2005/userkeeper/internal/client/validation"
	"github.com/dmitrijs2005/userkeeper/internal/common"
	"github.com/dmitrijs2005/userkeeper/internal/logging"
)

// stubRepo records Save calls and can be told to fail them.
type stubRepo struct {
	mu          sync.Mutex
	loaded      []models.User
	saves       [][]models.User
	failSave    bool
	unavailable bool
}

func (r *stubRepo) Load(ctx context.Context) []models.User {
	if r.loaded == nil {
		return []models.User{}
	}
	return r.loaded
}

func (r *stubRepo) Save(ctx context.Context, users []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return common.ErrPersist
	}
	r.saves = append(r.saves, users)
	return nil
}

func (r *stubRepo) Clear(ctx context.Context) {}

func (r *stubRepo) IsAvailable(ctx context.Context) bool { return !r.unavailable }

func (r *stubRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func (r *stubRepo) lastSave() []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

func newTestService(repo *stubRepo) *UserService {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s := NewUserService(repo, validation.New(), log)
	s.retryBase = time.Millisecond
	return s
}

func TestCreate_Success(t *testing.T) {
	repo := &stubRepo{}
	s := newTestService(repo)
	ctx := context.Background()

	u, errs, err := s.Create(ctx, models.CreateUserInput{Name: "  John Doe ", Email: " John@Example.COM "})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, u)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "John Doe", u.Name)
	assert.Equal(t, "john@example.com", u.Email)
	assert.True(t, u.CreatedAt.Equal(u.UpdatedAt))
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, repo.saveCount())
}

func TestCreate_IDsAreUnique(t *testing.T) {
	s := newTestService(&stubRepo{})
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i, email := range []string{"a@x.io", "b@x.io", "c@x.io"} {
		u, errs, err := s.Create(ctx, models.CreateUserInput{Name: "User", Email: email})
		require.NoError(t, err)
		require.Empty(t, errs)
		_, dup := seen[u.ID]
		assert.False(t, dup, "id %d repeated", i)
		seen[u.ID] = struct{}{}
	}
}

func TestCreate_ValidationFailure_NoMutationNoPersist(t *testing.T) {
	repo := &stubRepo{}
	s := newTestService(repo)

	u, errs, err := s.Create(context.Background(), models.CreateUserInput{Name: "", Email: "bad"})
	require.NoError(t, err)
	assert.Nil(t, u)
	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "email", errs[1].Field)

	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 0, repo.saveCount())
}

func TestCreate_DuplicateEmail_CaseInsensitive(t *testing.T) {
	s := newTestService(&stubRepo{})
	ctx := context.Background()

	_, errs, err := s.Create(ctx, models.CreateUserInput{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)
	require.Empty(t, errs)

	_, errs, err = s.Create(ctx, models.CreateUserInput{Name: "Johnny", Email: "JOHN@EXAMPLE.COM"})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, 1, s.Count())
}

func TestCreate_PersistFailure_KeepsMutationAndReportsError(t *testing.T) {
	repo := &stubRepo{failSave: true}
	s := newTestService(repo)
	ctx := context.Background()

	u, errs, err := s.Create(ctx, models.CreateUserInput{Name: "John", Email: "john@example.com"})
	require.Empty(t, errs)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPersist)
	assert.Contains(t, err.Error(), "failed to add user")

	// mutation stays, divergence is tracked
	require.NotNil(t, u)
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Dirty())
}

func TestResync_AfterFailure_ClearsDirty(t *testing.T) {
	repo := &stubRepo{failSave: true}
	s := newTestService(repo)
	ctx := context.Background()

	_, _, err := s.Create(ctx, models.CreateUserInput{Name: "John", Email: "john@example.com"})
	require.Error(t, err)
	require.True(t, s.Dirty())

	// storage recovers
	repo.mu.Lock()
	repo.failSave = false
	repo.mu.Unlock()

	require.NoError(t, s.Resync(ctx))
	assert.False(t, s.Dirty())
	require.Len(t, repo.lastSave(), 1)
	assert.Equal(t, "john@example.com", repo.lastSave()[0].Email)

	// nothing to do when clean
	require.NoError(t, s.Resync(ctx))
}

func TestUpdate_NotFound(t *testing.T) {
	s := newTestService(&stubRepo{})

	_, _, err := s.Update(context.Background(), "missing", models.UpdateUserInput{})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func strPtr(v string) *string { return &v }

func TestUpdate_MergesProvidedFieldsOnly(t *testing.T) {
	s := newTestService(&stubRepo{})
	ctx := context.Background()

	created, _, err := s.Create(ctx, models.CreateUserInput{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	u, errs, err := s.Update(ctx, created.ID, models.UpdateUserInput{Name: strPtr("Johnny")})
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.Equal(t, "Johnny", u.Name)
	assert.Equal(t, "john@example.com", u.Email)
	assert.True(t, u.UpdatedAt.Equal(base))
	assert.True(t, u.CreatedAt.Equal(created.CreatedAt))
	assert.Equal(t, created.ID, u.ID)
}

func TestUpdate_OwnEmailAnyCase_Succeeds(t *testing.T) {
	s := newTestService(&stubRepo{})
	ctx := context.Background()

	created, _, err := s.Create(ctx, models.CreateUserInput{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)

	_, errs, err := s.Update(ctx, created.ID, models.UpdateUserInput{Email: strPtr("JOHN@Example.com")})
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestUpdate_ToAnotherRecordsEmail_Fails(t *testing.T) {
	s := newTestService(&stubRepo{})
	ctx := context.Background()

	_, _, err := s.Create(ctx, models.CreateUserInput{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)
	jane, _, err := s.Create(ctx, models.CreateUserInput{Name: "Jane", Email: "jane@test.com"})
	require.NoError(t, err)

	_, errs, err := s.Update(ctx, jane.ID, models.UpdateUserInput{Email: strPtr("john@example.com")})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)

	// unchanged
	got, err := s.GetByID(jane.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@test.com", got.Email)
}

func TestDelete(t *testing.T) {
	repo := &stubRepo{}
	s := newTestService(repo)
	ctx := context.Background()

	created, _, err := s.Create(ctx, models.CreateUserInput{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)

	err = s.Delete(ctx, "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, 1, s.Count())

	require.NoError(t, s.Delete(ctx, created.ID))
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, repo.lastSave())
}

func TestClearAll_PersistsEmptyState(t *testing.T) {
	repo := &stubRepo{}
	s := newTestService(repo)
	ctx := context.Background()

	_, _, err := s.Create(ctx, models.CreateUserInput{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)

	require.NoError(t, s.ClearAll(ctx))
	assert.Equal(t, 0, s.Count())
	require.NotNil(t, repo.lastSave())
	assert.Empty(t, repo.lastSave())
}

func TestSearch(t *testing.T) {
	s := newTestService(&stubRepo{})
	ctx := context.Background()

	_, _, err := s.Create(ctx, models.CreateUserInput{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	_, _, err = s.Create(ctx, models.CreateUserInput{Name: "Jane Smith", Email: "jane@test.com"})
	require.NoError(t, err)

	got, stats, errs := s.Search("JOHN")
	require.Empty(t, errs)
	require.Len(t, got, 1)
	assert.Equal(t, "John Doe", got[0].Name)
	assert.Equal(t, models.Stats{Total: 2, Filtered: 1}, stats)
}

func TestSearch_QueryTooLong(t *testing.T) {
	s := newTestService(&stubRepo{})

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'q'
	}
	got, _, errs := s.Search(string(long))
	assert.Nil(t, got)
	require.Len(t, errs, 1)
	assert.Equal(t, "search", errs[0].Field)
}

func TestLoad_HydratesFromRepository(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubRepo{loaded: []models.User{
		{ID: "u1", Name: "John", Email: "john@example.com", CreatedAt: now, UpdatedAt: now},
	}}
	s := newTestService(repo)

	s.Load(context.Background())
	assert.Equal(t, 1, s.Count())
	assert.False(t, s.MemoryOnly())
}

func TestLoad_StorageUnavailable_MemoryOnly(t *testing.T) {
	repo := &stubRepo{unavailable: true}
	s := newTestService(repo)
	ctx := context.Background()

	s.Load(ctx)
	assert.True(t, s.MemoryOnly())

	// mutations succeed without touching the repository
	_, errs, err := s.Create(ctx, models.CreateUserInput{Name: "John", Email: "john@example.com"})
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, 0, repo.saveCount())
	assert.False(t, s.Dirty())
}
