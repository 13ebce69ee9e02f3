// Package cache implements the snapshot read cache using dgraph-io/ristretto
// as L1 in-process cache.
package cache

import (
	"time"

	"weekchain-capacity/internal/usecase/queries"

	"github.com/dgraph-io/ristretto/v2"
)

const latestKey = "capacity:latest"

// SnapshotCache holds the single latest snapshot view with a short TTL.
// The TTL bounds staleness between recalculations; an explicit Invalidate
// after each calculation makes the new snapshot visible immediately.
type SnapshotCache struct {
	c   *ristretto.Cache[string, *queries.SnapshotView]
	ttl time.Duration
}

func NewSnapshotCache(ttl time.Duration) (*SnapshotCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, *queries.SnapshotView]{
		NumCounters: 64,
		MaxCost:     16,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &SnapshotCache{c: c, ttl: ttl}, nil
}

func (s *SnapshotCache) Get() (*queries.SnapshotView, bool) {
	view, found := s.c.Get(latestKey)
	if !found || view == nil {
		return nil, false
	}
	return view, true
}

func (s *SnapshotCache) Set(view *queries.SnapshotView) {
	s.c.SetWithTTL(latestKey, view, 1, s.ttl)
	// Ristretto applies writes asynchronously; Wait makes the entry visible
	// to the next read.
	s.c.Wait()
}

func (s *SnapshotCache) Invalidate() {
	s.c.Del(latestKey)
	s.c.Wait()
}

func (s *SnapshotCache) Close() {
	s.c.Close()
}
