package app_test

import (
	"context"
	"errors"
	"testing"

	"babylog/internal/app"
	"babylog/internal/domain"
)

type mockFeedingRepo struct {
	addFn    func(ctx context.Context, f domain.Feeding) (uint64, error)
	updateFn func(ctx context.Context, id uint64, f domain.Feeding) error
	deleteFn func(ctx context.Context, id uint64) error
	listFn   func(ctx context.Context, babyName string, limit int) ([]domain.Feeding, error)
	rangeFn  func(ctx context.Context, babyName string, from, to domain.Timestamp) ([]domain.Feeding, error)
}

func (m *mockFeedingRepo) AddFeeding(ctx context.Context, f domain.Feeding) (uint64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, f)
	}
	return 1, nil
}

func (m *mockFeedingRepo) UpdateFeeding(ctx context.Context, id uint64, f domain.Feeding) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, f)
	}
	return nil
}

func (m *mockFeedingRepo) DeleteFeeding(ctx context.Context, id uint64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockFeedingRepo) ListFeedings(ctx context.Context, babyName string, limit int) ([]domain.Feeding, error) {
	if m.listFn != nil {
		return m.listFn(ctx, babyName, limit)
	}
	return nil, nil
}

func (m *mockFeedingRepo) FeedingsForRange(ctx context.Context, babyName string, from, to domain.Timestamp) ([]domain.Feeding, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, babyName, from, to)
	}
	return nil, nil
}

func TestRecordFeeding_ParsesInputs(t *testing.T) {
	var got domain.Feeding
	repo := &mockFeedingRepo{
		addFn: func(_ context.Context, f domain.Feeding) (uint64, error) {
			got = f
			return 7, nil
		},
	}
	svc := app.NewFeedingService(repo)

	ml := 120.0
	id, err := svc.Record(context.Background(), "june", "b", &ml, nil, "", "2026-03-01 08:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	if got.Type != domain.FeedingBottle {
		t.Fatalf("alias not resolved: %q", got.Type)
	}
	if got.Timestamp.String() != "2026-03-01T08:30:00" {
		t.Fatalf("timestamp not normalized: %q", got.Timestamp)
	}
}

func TestRecordFeeding_Validation(t *testing.T) {
	svc := app.NewFeedingService(&mockFeedingRepo{})

	tests := []struct {
		name        string
		feedingType string
		timestamp   string
	}{
		{"bad type", "formula", "2026-03-01T08:00:00"},
		{"bad timestamp", "bottle", "morning"},
		{"bare date timestamp", "bottle", "2026-03-01"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), "june", tc.feedingType, nil, nil, "", tc.timestamp)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestFeedingListForDay_RangeBounds(t *testing.T) {
	repo := &mockFeedingRepo{
		rangeFn: func(_ context.Context, _ string, from, to domain.Timestamp) ([]domain.Feeding, error) {
			if from.String() != "2026-03-01T00:00:00" || to.String() != "2026-03-02T00:00:00" {
				t.Fatalf("unexpected range: %s .. %s", from, to)
			}
			return nil, nil
		},
	}
	svc := app.NewFeedingService(repo)
	if _, err := svc.ListForDay(context.Background(), "june", "2026-03-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ListForDay(context.Background(), "june", "not-a-date"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFeedingDelete_RepoError(t *testing.T) {
	repo := &mockFeedingRepo{
		deleteFn: func(_ context.Context, _ uint64) error {
			return errors.New("storage down")
		},
	}
	svc := app.NewFeedingService(repo)
	if err := svc.Delete(context.Background(), 1); err == nil {
		t.Fatal("expected error from repo")
	}
}
