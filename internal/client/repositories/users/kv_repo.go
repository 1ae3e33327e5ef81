package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
	"github.com/dmitrijs2005/userkeeper/internal/client/storage"
	"github.com/dmitrijs2005/userkeeper/internal/common"
	"github.com/dmitrijs2005/userkeeper/internal/logging"
	"github.com/dmitrijs2005/userkeeper/internal/shared"
)

const (
	// StorageKey is the single key the collection snapshot lives under.
	StorageKey = "userManagementApp_users"

	// SchemaVersion is stamped into every snapshot envelope.
	SchemaVersion = "1.0.0"
)

// snapshot is the persisted JSON envelope.
type snapshot struct {
	Users       []models.User `json:"users"`
	Version     string        `json:"version"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// KVRepository implements Repository over a storage.KV.
type KVRepository struct {
	kv  storage.KV
	log logging.Logger
	now func() time.Time
}

// NewKVRepository returns a KVRepository writing through the given KV.
func NewKVRepository(kv storage.KV, log logging.Logger) *KVRepository {
	return &KVRepository{kv: kv, log: log, now: time.Now}
}

func (r *KVRepository) Load(ctx context.Context) []models.User {
	raw, err := r.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			r.log.Error(ctx, "failed to load users from storage", "error", err)
		}
		return []models.User{}
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		r.log.Error(ctx, "failed to parse stored users, starting empty", "error", err)
		return []models.User{}
	}
	if snap.Users == nil {
		return []models.User{}
	}
	return snap.Users
}

func (r *KVRepository) Save(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	snap := snapshot{Users: users, Version: SchemaVersion, LastUpdated: r.now()}

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersist, err)
	}
	if err := r.kv.Set(ctx, StorageKey, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersist, err)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context) {
	if err := r.kv.Delete(ctx, StorageKey); err != nil {
		r.log.Error(ctx, "failed to clear stored users", "error", err)
	}
}

// IsAvailable writes and removes a throwaway probe key. A random suffix
// keeps concurrent probes from stepping on each other.
func (r *KVRepository) IsAvailable(ctx context.Context) bool {
	suffix, err := shared.MakeRandHexString(4)
	if err != nil {
		return false
	}
	probe := "__storage_probe__" + suffix

	if err := r.kv.Set(ctx, probe, "probe"); err != nil {
		return false
	}
	if err := r.kv.Delete(ctx, probe); err != nil {
		return false
	}
	return true
}
