package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/agoramujeres/agora-client/internal/logging"
)

// Store resolves the device identifier against an ordered backend chain.
type Store struct {
	backends []Backend
	log      logging.Logger
}

func NewStore(log logging.Logger, backends ...Backend) *Store {
	return &Store{backends: backends, log: log}
}

// GetOrCreateDeviceID walks the chain for a previously stored identifier
// and returns the first one found. When none exists, a fresh random
// identifier is generated and written to the first backend that accepts it.
//
// Storage failures are never surfaced: a read error skips to the next tier,
// and when every write fails the fresh identifier is still returned for the
// current session (it just will not survive restart).
func (s *Store) GetOrCreateDeviceID(ctx context.Context) string {
	for _, b := range s.backends {
		id, err := b.TryRead(ctx)
		if err != nil {
			s.log.Warn(ctx, "identity backend read failed", "backend", b.Name(), "error", err)
			continue
		}
		if id != "" {
			return id
		}
	}

	id := uuid.NewString()
	for _, b := range s.backends {
		if err := b.TryWrite(ctx, id); err != nil {
			s.log.Warn(ctx, "identity backend write failed", "backend", b.Name(), "error", err)
			continue
		}
		return id
	}

	s.log.Warn(ctx, "device id not persisted, using session-only identifier", "device_id", id)
	return id
}
