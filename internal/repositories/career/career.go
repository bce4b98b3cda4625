// Package career persists the single career-mode progress record.
package career

import (
	"context"

	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/models"
)

const Key = "skillverse_career"

type Repository interface {
	Get(ctx context.Context) (models.CareerProgress, error)
	Save(ctx context.Context, c models.CareerProgress) error
	Delete(ctx context.Context) error
}

type KVRepository struct {
	store kv.Repository
}

func New(store kv.Repository) *KVRepository {
	return &KVRepository{store: store}
}

// Get returns the stored record, or an empty one when none was saved.
func (r *KVRepository) Get(ctx context.Context) (models.CareerProgress, error) {
	c := models.NewCareerProgress()
	found, err := kv.GetJSON(ctx, r.store, Key, &c)
	if err != nil {
		return models.CareerProgress{}, err
	}
	if !found {
		return models.NewCareerProgress(), nil
	}
	c.Normalize()
	return c, nil
}

func (r *KVRepository) Save(ctx context.Context, c models.CareerProgress) error {
	c.Normalize()
	return kv.SetJSON(ctx, r.store, Key, c)
}

func (r *KVRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, Key)
}
