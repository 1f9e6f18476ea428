package ledger

import (
	"encoding/json"
	"fmt"
	"sort"

	"babylog/internal/domain"
)

// snapshot is the wire form of a whole store: the three partitions plus each
// partition's next-id counter. Field names are stable; any consumer that can
// read JSON can decode the blob without sharing code with this package.
type snapshot struct {
	Feedings        []domain.Feeding   `json:"feedings"`
	Dejections      []domain.Dejection `json:"dejections"`
	Weights         []domain.Weight    `json:"weights"`
	NextFeedingID   uint64             `json:"next_feeding_id"`
	NextDejectionID uint64             `json:"next_dejection_id"`
	NextWeightID    uint64             `json:"next_weight_id"`
}

// Export serializes the whole store into one blob. Entries are ordered by id
// so repeated exports of the same store are byte-identical.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		Feedings:        make([]domain.Feeding, 0, len(s.feedings)),
		Dejections:      make([]domain.Dejection, 0, len(s.dejections)),
		Weights:         make([]domain.Weight, 0, len(s.weights)),
		NextFeedingID:   s.nextFeedingID,
		NextDejectionID: s.nextDejectionID,
		NextWeightID:    s.nextWeightID,
	}
	for _, f := range s.feedings {
		snap.Feedings = append(snap.Feedings, f)
	}
	for _, d := range s.dejections {
		snap.Dejections = append(snap.Dejections, d)
	}
	for _, w := range s.weights {
		snap.Weights = append(snap.Weights, w)
	}
	sort.Slice(snap.Feedings, func(i, j int) bool { return snap.Feedings[i].ID < snap.Feedings[j].ID })
	sort.Slice(snap.Dejections, func(i, j int) bool { return snap.Dejections[i].ID < snap.Dejections[j].ID })
	sort.Slice(snap.Weights, func(i, j int) bool { return snap.Weights[i].ID < snap.Weights[j].ID })

	return json.Marshal(snap)
}

// Load parses a blob into a fresh store.
func Load(blob []byte) (*Store, error) {
	s := New()
	if err := s.Restore(blob); err != nil {
		return nil, err
	}
	return s, nil
}

// Restore replaces the store's contents with the decoded blob. The swap is
// all-or-nothing: any structural or semantic error leaves the receiver
// unchanged and returns domain.ErrDecode. Missing collections decode as
// empty; a missing or stale counter is recomputed as max(id)+1, which also
// accepts blobs written before the counters were split per kind.
func (s *Store) Restore(blob []byte) error {
	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	feedings := make(map[uint64]domain.Feeding, len(snap.Feedings))
	var maxFeedingID uint64
	for _, f := range snap.Feedings {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%w: feeding %d: %v", domain.ErrDecode, f.ID, err)
		}
		if _, dup := feedings[f.ID]; dup {
			return fmt.Errorf("%w: duplicate feeding id %d", domain.ErrDecode, f.ID)
		}
		feedings[f.ID] = f
		if f.ID > maxFeedingID {
			maxFeedingID = f.ID
		}
	}

	dejections := make(map[uint64]domain.Dejection, len(snap.Dejections))
	var maxDejectionID uint64
	for _, d := range snap.Dejections {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%w: dejection %d: %v", domain.ErrDecode, d.ID, err)
		}
		if _, dup := dejections[d.ID]; dup {
			return fmt.Errorf("%w: duplicate dejection id %d", domain.ErrDecode, d.ID)
		}
		dejections[d.ID] = d
		if d.ID > maxDejectionID {
			maxDejectionID = d.ID
		}
	}

	weights := make(map[uint64]domain.Weight, len(snap.Weights))
	var maxWeightID uint64
	for _, w := range snap.Weights {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("%w: weight %d: %v", domain.ErrDecode, w.ID, err)
		}
		if _, dup := weights[w.ID]; dup {
			return fmt.Errorf("%w: duplicate weight id %d", domain.ErrDecode, w.ID)
		}
		weights[w.ID] = w
		if w.ID > maxWeightID {
			maxWeightID = w.ID
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedings = feedings
	s.dejections = dejections
	s.weights = weights
	s.nextFeedingID = nextID(snap.NextFeedingID, maxFeedingID)
	s.nextDejectionID = nextID(snap.NextDejectionID, maxDejectionID)
	s.nextWeightID = nextID(snap.NextWeightID, maxWeightID)
	return nil
}

func nextID(stored, maxSeen uint64) uint64 {
	if stored > maxSeen {
		return stored
	}
	return maxSeen + 1
}
