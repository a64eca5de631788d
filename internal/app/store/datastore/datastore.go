// internal/app/store/datastore/datastore.go
package datastore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voltdesk/voltdesk/internal/app/store/snapshot"
	"github.com/voltdesk/voltdesk/internal/app/system/metrics"
)

var (
	// ErrNotFound is returned when an id does not resolve to a record.
	ErrNotFound = errors.New("record not found")
	// ErrNotSignedIn is returned by operations that require a session.
	ErrNotSignedIn = errors.New("no user signed in")
)

// Store is the sole authority over the application snapshot. Every
// operation is one load-mutate-store cycle under a single mutex, which
// preserves the original single-writer model even with concurrent
// callers in one process. Multi-process deployments sharing a backend
// still race; see the snapshot backends for what each substrate offers.
type Store struct {
	mu      sync.Mutex
	backend snapshot.Backend
	seed    func() snapshot.Snapshot
	logger  *zap.Logger
}

// New builds a Store over the given backend. seed supplies the initial
// collections consumed only on first bootstrap; it may be nil for an
// empty snapshot. A nil logger disables logging.
func New(backend snapshot.Backend, seed func() snapshot.Snapshot, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics.Register()
	return &Store{backend: backend, seed: seed, logger: logger}
}

// load reads the snapshot, seeding it on first access. The bootstrap is
// lazy and idempotent: once a blob exists it is never re-seeded.
func (s *Store) load(ctx context.Context) (snapshot.Snapshot, error) {
	b, ok, err := s.backend.Load(ctx)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	if !ok {
		snap := snapshot.Snapshot{}
		if s.seed != nil {
			snap = s.seed()
		}
		snap.CurrentUser = nil
		if err := s.save(ctx, snap); err != nil {
			return snapshot.Snapshot{}, err
		}
		s.logger.Info("snapshot seeded",
			zap.Int("users", len(snap.Users)),
			zap.Int("projects", len(snap.Projects)))
		return snap, nil
	}
	return snapshot.Decode(b)
}

// save writes the whole snapshot back in one step.
func (s *Store) save(ctx context.Context, snap snapshot.Snapshot) error {
	b, err := snapshot.Encode(snap)
	if err != nil {
		return err
	}
	if err := s.backend.Store(ctx, b); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	metrics.SnapshotStores.Inc()
	return nil
}

// Bootstrap forces the lazy first-boot seeding without performing any
// other operation. Safe to call repeatedly.
func (s *Store) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.load(ctx)
	return err
}

// Close closes the underlying backend.
func (s *Store) Close(ctx context.Context) error {
	return s.backend.Close(ctx)
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
