// Package backup exports the whole key/value store as a JSON snapshot and
// restores it. Snapshots are written to a Sink: a local directory or an
// S3-compatible bucket.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/skillverse/internal/common"
	"github.com/dmitrijs2005/skillverse/internal/kv"
)

// SnapshotVersion is the format version written by Export.
const SnapshotVersion = 1

// Snapshot is every record of the store at one point in time.
type Snapshot struct {
	Version   int                        `json:"version"`
	CreatedAt time.Time                  `json:"createdAt"`
	Records   map[string]json.RawMessage `json:"records"`
}

// Export reads every key of r. Values must be JSON documents.
func Export(ctx context.Context, r kv.Repository, now time.Time) (Snapshot, error) {
	all, err := r.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Version:   SnapshotVersion,
		CreatedAt: now.UTC(),
		Records:   make(map[string]json.RawMessage, len(all)),
	}
	for k, v := range all {
		if !json.Valid(v) {
			return Snapshot{}, fmt.Errorf("export %s: %w", k, common.ErrCorruptRecord)
		}
		snap.Records[k] = json.RawMessage(v)
	}
	return snap, nil
}

// Import replaces the store content with snap in one Atomic group.
func Import(ctx context.Context, store kv.Store, snap Snapshot) error {
	return store.Atomic(ctx, func(ctx context.Context, r kv.Repository) error {
		if err := r.Clear(ctx); err != nil {
			return err
		}
		for k, v := range snap.Records {
			if err := r.Set(ctx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

func Encode(snap Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// Decode parses a snapshot and rejects unknown format versions.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w: %v", common.ErrCorruptRecord, err)
	}
	if snap.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("decode snapshot: unsupported version %d", snap.Version)
	}
	if snap.Records == nil {
		snap.Records = map[string]json.RawMessage{}
	}
	return snap, nil
}
