package app

import (
	"context"

	"babylog/internal/domain"
)

// DejectionService encapsulates diaper-event use cases.
type DejectionService struct {
	repo domain.DejectionRepository
}

// NewDejectionService creates a DejectionService backed by the given
// repository.
func NewDejectionService(repo domain.DejectionRepository) *DejectionService {
	return &DejectionService{repo: repo}
}

// Record validates and stores a new dejection, returning its id.
func (s *DejectionService) Record(ctx context.Context, babyName, dejectionType, notes, timestamp string) (uint64, error) {
	dt, err := domain.ParseDejectionType(dejectionType)
	if err != nil {
		return 0, err
	}
	ts, err := domain.ParseTimestamp(timestamp)
	if err != nil {
		return 0, err
	}
	return s.repo.AddDejection(ctx, domain.Dejection{
		BabyName:  babyName,
		Type:      dt,
		Notes:     notes,
		Timestamp: ts,
	})
}

// Update replaces the entry's fields.
func (s *DejectionService) Update(ctx context.Context, id uint64, dejectionType, notes, timestamp string) error {
	dt, err := domain.ParseDejectionType(dejectionType)
	if err != nil {
		return err
	}
	ts, err := domain.ParseTimestamp(timestamp)
	if err != nil {
		return err
	}
	return s.repo.UpdateDejection(ctx, id, domain.Dejection{
		Type:      dt,
		Notes:     notes,
		Timestamp: ts,
	})
}

// Delete removes the entry.
func (s *DejectionService) Delete(ctx context.Context, id uint64) error {
	return s.repo.DeleteDejection(ctx, id)
}

// ListForDay returns the calendar day's dejections in ascending time order.
func (s *DejectionService) ListForDay(ctx context.Context, babyName, date string) ([]domain.Dejection, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.DejectionsForRange(ctx, babyName, day, day.AddDays(1))
}
