// Package ledger implements the in-memory activity store: three partitions
// (feedings, dejections, weights), each keyed by id with its own monotonic
// id sequence, plus the snapshot codec that persists the whole store as one
// blob.
package ledger

import (
	"sync"

	"babylog/internal/domain"
)

// Store owns all entries. Each partition allocates ids independently; an id
// is never reused, even after deletions. The mutex keeps the store safe under
// the HTTP adapter even though callers are logically single-threaded.
type Store struct {
	mu         sync.Mutex
	feedings   map[uint64]domain.Feeding
	dejections map[uint64]domain.Dejection
	weights    map[uint64]domain.Weight

	nextFeedingID   uint64
	nextDejectionID uint64
	nextWeightID    uint64
}

// New creates an empty store.
func New() *Store {
	return &Store{
		feedings:        make(map[uint64]domain.Feeding),
		dejections:      make(map[uint64]domain.Dejection),
		weights:         make(map[uint64]domain.Weight),
		nextFeedingID:   1,
		nextDejectionID: 1,
		nextWeightID:    1,
	}
}

// Ensure the ports are met.
var _ domain.FeedingRepository = (*Store)(nil)
var _ domain.DejectionRepository = (*Store)(nil)
var _ domain.WeightRepository = (*Store)(nil)
var _ domain.Snapshotter = (*Store)(nil)

func matchesName(entryName, filter string) bool {
	return filter == "" || entryName == filter
}

func inRange(ts, from, to domain.Timestamp) bool {
	return !ts.Before(from) && ts.Before(to)
}
