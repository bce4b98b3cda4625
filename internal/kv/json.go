package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/skillverse/internal/common"
)

// GetJSON loads key into v. It reports false when the key is absent and
// wraps common.ErrCorruptRecord when the stored bytes are not valid JSON
// for v.
func GetJSON(ctx context.Context, r Repository, key string, v any) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w: %v", key, common.ErrCorruptRecord, err)
	}
	return true, nil
}

// SetJSON stores v under key as a JSON document.
func SetJSON(ctx context.Context, r Repository, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.Set(ctx, key, data)
}
