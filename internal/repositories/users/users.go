// Package users persists the account directory: one JSON object mapping
// lowercase email to UserRecord, stored under a single key.
package users

import (
	"context"

	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/models"
)

const Key = "skillverse_users_db"

type Repository interface {
	All(ctx context.Context) (map[string]models.UserRecord, error)
	Get(ctx context.Context, email string) (models.UserRecord, bool, error)
	Put(ctx context.Context, rec models.UserRecord) error
}

type KVRepository struct {
	store kv.Repository
}

func New(store kv.Repository) *KVRepository {
	return &KVRepository{store: store}
}

// All returns the whole directory; an absent record is an empty directory.
func (r *KVRepository) All(ctx context.Context) (map[string]models.UserRecord, error) {
	db := map[string]models.UserRecord{}
	if _, err := kv.GetJSON(ctx, r.store, Key, &db); err != nil {
		return nil, err
	}
	if db == nil {
		db = map[string]models.UserRecord{}
	}
	return db, nil
}

// Get looks up an entry by its already normalized email.
func (r *KVRepository) Get(ctx context.Context, email string) (models.UserRecord, bool, error) {
	db, err := r.All(ctx)
	if err != nil {
		return models.UserRecord{}, false, err
	}
	rec, ok := db[email]
	return rec, ok, nil
}

// Put inserts or replaces the entry keyed by rec.Email and rewrites the
// directory.
func (r *KVRepository) Put(ctx context.Context, rec models.UserRecord) error {
	db, err := r.All(ctx)
	if err != nil {
		return err
	}
	db[rec.Email] = rec
	return kv.SetJSON(ctx, r.store, Key, db)
}
