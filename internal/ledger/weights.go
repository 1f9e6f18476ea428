package ledger

import (
	"context"
	"fmt"
	"sort"

	"babylog/internal/domain"
)

// AddWeight validates w, assigns the next weight id and inserts it.
func (s *Store) AddWeight(ctx context.Context, w domain.Weight) (uint64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	w.ID = s.nextWeightID
	s.nextWeightID++
	s.weights[w.ID] = w
	return w.ID, nil
}

// UpdateWeight replaces every field of the entry except its id and baby name.
func (s *Store) UpdateWeight(ctx context.Context, id uint64, w domain.Weight) error {
	if err := w.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.weights[id]
	if !ok {
		return fmt.Errorf("%w: weight %d", domain.ErrNotFound, id)
	}
	w.ID = id
	w.BabyName = cur.BabyName
	s.weights[id] = w
	return nil
}

// DeleteWeight removes the entry.
func (s *Store) DeleteWeight(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.weights[id]; !ok {
		return fmt.Errorf("%w: weight %d", domain.ErrNotFound, id)
	}
	delete(s.weights, id)
	return nil
}

// WeightsForRange returns weights with from <= timestamp < to in ascending
// timestamp order, ids ascending on ties.
func (s *Store) WeightsForRange(ctx context.Context, babyName string, from, to domain.Timestamp) ([]domain.Weight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Weight, 0)
	for _, w := range s.weights {
		if matchesName(w.BabyName, babyName) && inRange(w.Timestamp, from, to) {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp.Time) {
			return result[i].Timestamp.Before(result[j].Timestamp)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}
