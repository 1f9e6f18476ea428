package ledger

import (
	"context"
	"fmt"
	"sort"

	"babylog/internal/domain"
)

// AddFeeding validates f, assigns the next feeding id and inserts it.
func (s *Store) AddFeeding(ctx context.Context, f domain.Feeding) (uint64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = s.nextFeedingID
	s.nextFeedingID++
	s.feedings[f.ID] = f
	return f.ID, nil
}

// UpdateFeeding replaces every field of the entry except its id and baby
// name. Optional fields absent from f are cleared.
func (s *Store) UpdateFeeding(ctx context.Context, id uint64, f domain.Feeding) error {
	if err := f.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.feedings[id]
	if !ok {
		return fmt.Errorf("%w: feeding %d", domain.ErrNotFound, id)
	}
	f.ID = id
	f.BabyName = cur.BabyName
	s.feedings[id] = f
	return nil
}

// DeleteFeeding removes the entry. The freed id is never reassigned.
func (s *Store) DeleteFeeding(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.feedings[id]; !ok {
		return fmt.Errorf("%w: feeding %d", domain.ErrNotFound, id)
	}
	delete(s.feedings, id)
	return nil
}

// ListFeedings returns feedings most recent first, optionally filtered by
// baby name. A limit of zero yields an empty slice; domain.NoLimit returns
// everything.
func (s *Store) ListFeedings(ctx context.Context, babyName string, limit int) ([]domain.Feeding, error) {
	if limit == 0 {
		return []domain.Feeding{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Feeding, 0, len(s.feedings))
	for _, f := range s.feedings {
		if matchesName(f.BabyName, babyName) {
			result = append(result, f)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp.Time) {
			return result[j].Timestamp.Before(result[i].Timestamp)
		}
		return result[i].ID > result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// FeedingsForRange returns feedings with from <= timestamp < to in ascending
// timestamp order, ids ascending on ties.
func (s *Store) FeedingsForRange(ctx context.Context, babyName string, from, to domain.Timestamp) ([]domain.Feeding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Feeding, 0)
	for _, f := range s.feedings {
		if matchesName(f.BabyName, babyName) && inRange(f.Timestamp, from, to) {
			result = append(result, f)
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
