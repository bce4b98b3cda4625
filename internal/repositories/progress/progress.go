// Package progress persists the course progress table, an ordered list with
// at most one entry per course id.
package progress

import (
	"context"

	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/models"
)

const Key = "skillverse_progress"

type Repository interface {
	All(ctx context.Context) ([]models.CourseProgress, error)
	Get(ctx context.Context, courseID string) (models.CourseProgress, bool, error)
	Upsert(ctx context.Context, p models.CourseProgress) error
	Delete(ctx context.Context) error
}

type KVRepository struct {
	store kv.Repository
}

func New(store kv.Repository) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) All(ctx context.Context) ([]models.CourseProgress, error) {
	var list []models.CourseProgress
	if _, err := kv.GetJSON(ctx, r.store, Key, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.CourseProgress{}
	}
	return list, nil
}

func (r *KVRepository) Get(ctx context.Context, courseID string) (models.CourseProgress, bool, error) {
	list, err := r.All(ctx)
	if err != nil {
		return models.CourseProgress{}, false, err
	}
	for _, p := range list {
		if p.CourseID == courseID {
			return p, true, nil
		}
	}
	return models.CourseProgress{}, false, nil
}

// Upsert replaces the entry with the same course id in place, or appends.
func (r *KVRepository) Upsert(ctx context.Context, p models.CourseProgress) error {
	list, err := r.All(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range list {
		if list[i].CourseID == p.CourseID {
			list[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, p)
	}

	return kv.SetJSON(ctx, r.store, Key, list)
}

func (r *KVRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, Key)
}
