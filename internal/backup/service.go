package backup

import (
	"context"
	"time"

	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/logging"
)

// Service moves snapshots between a store and a sink.
type Service struct {
	store kv.Store
	sink  Sink
	log   logging.Logger
	now   func() time.Time
}

func NewService(store kv.Store, sink Sink, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{store: store, sink: sink, log: log, now: time.Now}
}

// Export writes a snapshot to the sink and returns its key.
func (s *Service) Export(ctx context.Context) (string, error) {
	now := s.now()
	snap, err := Export(ctx, s.store, now)
	if err != nil {
		return "", err
	}
	data, err := Encode(snap)
	if err != nil {
		return "", err
	}

	key := ObjectKey(now)
	if err := s.sink.Put(ctx, key, data); err != nil {
		return "", err
	}

	s.log.Info(ctx, "backup exported", "key", key, "records", len(snap.Records))
	return key, nil
}

// Import replaces the store content with the snapshot stored under key.
func (s *Service) Import(ctx context.Context, key string) (Snapshot, error) {
	data, err := s.sink.Get(ctx, key)
	if err != nil {
		return Snapshot{}, err
	}
	snap, err := Decode(data)
	if err != nil {
		return Snapshot{}, err
	}
	if err := Import(ctx, s.store, snap); err != nil {
		return Snapshot{}, err
	}

	s.log.Info(ctx, "backup imported", "key", key, "records", len(snap.Records))
	return snap, nil
}
