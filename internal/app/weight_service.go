package app

import (
	"context"

	"babylog/internal/domain"
)

// WeightService encapsulates weight-measurement use cases.
type WeightService struct {
	repo domain.WeightRepository
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo}
}

// Record validates and stores a new measurement, returning its id.
func (s *WeightService) Record(ctx context.Context, babyName string, weightKG float64, notes, timestamp string) (uint64, error) {
	ts, err := domain.ParseTimestamp(timestamp)
	if err != nil {
		return 0, err
	}
	return s.repo.AddWeight(ctx, domain.Weight{
		BabyName:  babyName,
		WeightKG:  weightKG,
		Notes:     notes,
		Timestamp: ts,
	})
}

// Update replaces the entry's fields.
func (s *WeightService) Update(ctx context.Context, id uint64, weightKG float64, notes, timestamp string) error {
	ts, err := domain.ParseTimestamp(timestamp)
	if err != nil {
		return err
	}
	return s.repo.UpdateWeight(ctx, id, domain.Weight{
		WeightKG:  weightKG,
		Notes:     notes,
		Timestamp: ts,
	})
}

// Delete removes the entry.
func (s *WeightService) Delete(ctx context.Context, id uint64) error {
	return s.repo.DeleteWeight(ctx, id)
}

// ListForDay returns the calendar day's measurements in ascending time order.
func (s *WeightService) ListForDay(ctx context.Context, babyName, date string) ([]domain.Weight, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.WeightsForRange(ctx, babyName, day, day.AddDays(1))
}
