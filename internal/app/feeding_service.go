// Package app holds the application services: entry use cases, the query
// engine aggregations, authentication and snapshot handling.
package app

import (
	"context"

	"babylog/internal/domain"
)

// FeedingService encapsulates feeding use cases. It parses the caller's
// strings (subtype, timestamps) and delegates to the ledger port.
type FeedingService struct {
	repo domain.FeedingRepository
}

// NewFeedingService creates a FeedingService backed by the given repository.
func NewFeedingService(repo domain.FeedingRepository) *FeedingService {
	return &FeedingService{repo: repo}
}

// Record validates and stores a new feeding, returning its id.
func (s *FeedingService) Record(ctx context.Context, babyName, feedingType string, amountML *float64, durationMinutes *int, notes, timestamp string) (uint64, error) {
	ft, err := domain.ParseFeedingType(feedingType)
	if err != nil {
		return 0, err
	}
	ts, err := domain.ParseTimestamp(timestamp)
	if err != nil {
		return 0, err
	}
	return s.repo.AddFeeding(ctx, domain.Feeding{
		BabyName:        babyName,
		Type:            ft,
		AmountML:        amountML,
		DurationMinutes: durationMinutes,
		Notes:           notes,
		Timestamp:       ts,
	})
}

// Update replaces the entry's fields. Omitted optional fields are cleared.
func (s *FeedingService) Update(ctx context.Context, id uint64, feedingType string, amountML *float64, durationMinutes *int, notes, timestamp string) error {
	ft, err := domain.ParseFeedingType(feedingType)
	if err != nil {
		return err
	}
	ts, err := domain.ParseTimestamp(timestamp)
	if err != nil {
		return err
	}
	return s.repo.UpdateFeeding(ctx, id, domain.Feeding{
		Type:            ft,
		AmountML:        amountML,
		DurationMinutes: durationMinutes,
		Notes:           notes,
		Timestamp:       ts,
	})
}

// Delete removes the entry.
func (s *FeedingService) Delete(ctx context.Context, id uint64) error {
	return s.repo.DeleteFeeding(ctx, id)
}

// ListRecent returns feedings most recent first, up to limit.
func (s *FeedingService) ListRecent(ctx context.Context, babyName string, limit int) ([]domain.Feeding, error) {
	return s.repo.ListFeedings(ctx, babyName, limit)
}

// ListForDay returns the calendar day's feedings in ascending time order.
func (s *FeedingService) ListForDay(ctx context.Context, babyName, date string) ([]domain.Feeding, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.FeedingsForRange(ctx, babyName, day, day.AddDays(1))
}
