// Package session persists the current-session record: a full copy of the
// signed-in UserRecord, or nothing.
package session

import (
	"context"

	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/models"
)

const Key = "skillverse_current_session"

type Repository interface {
	Get(ctx context.Context) (models.UserRecord, bool, error)
	Set(ctx context.Context, rec models.UserRecord) error
	Delete(ctx context.Context) error
}

type KVRepository struct {
	store kv.Repository
}

func New(store kv.Repository) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Get(ctx context.Context) (models.UserRecord, bool, error) {
	var rec models.UserRecord
	found, err := kv.GetJSON(ctx, r.store, Key, &rec)
	if err != nil || !found {
		return models.UserRecord{}, false, err
	}
	return rec, true, nil
}

func (r *KVRepository) Set(ctx context.Context, rec models.UserRecord) error {
	return kv.SetJSON(ctx, r.store, Key, rec)
}

func (r *KVRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, Key)
}
