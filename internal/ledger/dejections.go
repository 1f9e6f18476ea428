package ledger

import (
	"context"
	"fmt"
	"sort"

	"babylog/internal/domain"
)

// AddDejection validates d, assigns the next dejection id and inserts it.
func (s *Store) AddDejection(ctx context.Context, d domain.Dejection) (uint64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = s.nextDejectionID
	s.nextDejectionID++
	s.dejections[d.ID] = d
	return d.ID, nil
}

// UpdateDejection replaces every field of the entry except its id and baby
// name.
func (s *Store) UpdateDejection(ctx context.Context, id uint64, d domain.Dejection) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.dejections[id]
	if !ok {
		return fmt.Errorf("%w: dejection %d", domain.ErrNotFound, id)
	}
	d.ID = id
	d.BabyName = cur.BabyName
	s.dejections[id] = d
	return nil
}

// DeleteDejection removes the entry.
func (s *Store) DeleteDejection(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dejections[id]; !ok {
		return fmt.Errorf("%w: dejection %d", domain.ErrNotFound, id)
	}
	delete(s.dejections, id)
	return nil
}

// DejectionsForRange returns dejections with from <= timestamp < to in
// ascending timestamp order, ids ascending on ties.
func (s *Store) DejectionsForRange(ctx context.Context, babyName string, from, to domain.Timestamp) ([]domain.Dejection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Dejection, 0)
	for _, d := range s.dejections {
		if matchesName(d.BabyName, babyName) && inRange(d.Timestamp, from, to) {
			result = append(result, d)
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
