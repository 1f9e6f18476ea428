package app_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"babylog/internal/app"
	"babylog/internal/domain"
	"babylog/internal/ledger"
)

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

// seededStore builds a real ledger with one day of typical activity.
func seededStore(t *testing.T) *ledger.Store {
	t.Helper()
	s := ledger.New()
	ctx := context.Background()

	add := func(f domain.Feeding) {
		t.Helper()
		if _, err := s.AddFeeding(ctx, f); err != nil {
			t.Fatal(err)
		}
	}
	parse := func(in string) domain.Timestamp {
		t.Helper()
		ts, err := domain.ParseTimestamp(in)
		if err != nil {
			t.Fatal(err)
		}
		return ts
	}

	add(domain.Feeding{BabyName: "june", Type: domain.FeedingBottle, AmountML: f64(90), Timestamp: parse("2026-03-01T08:00:00")})
	add(domain.Feeding{BabyName: "june", Type: domain.FeedingBottle, AmountML: f64(120), Timestamp: parse("2026-03-01T12:00:00")})
	add(domain.Feeding{BabyName: "june", Type: domain.FeedingBreastLeft, DurationMinutes: iptr(10), Timestamp: parse("2026-03-01T16:00:00")})

	if _, err := s.AddDejection(ctx, domain.Dejection{BabyName: "june", Type: domain.DejectionUrine, Timestamp: parse("2026-03-01T08:05:00")}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddDejection(ctx, domain.Dejection{BabyName: "june", Type: domain.DejectionPoop, Timestamp: parse("2026-03-01T14:00:00")}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddWeight(ctx, domain.Weight{BabyName: "june", WeightKG: 3.2, Timestamp: parse("2026-03-01T08:00:00")}); err != nil {
		t.Fatal(err)
	}
	return s
}

func newReportService(s *ledger.Store) *app.ReportService {
	return app.NewReportService(s, s, s)
}

func TestSummary_Totals(t *testing.T) {
	svc := newReportService(seededStore(t))

	sum, err := svc.Summary(context.Background(), "june", "2026-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.TotalFeedings != 3 {
		t.Fatalf("total feedings: got %d, want 3", sum.TotalFeedings)
	}
	if sum.TotalML != 210 {
		t.Fatalf("total ml: got %v, want 210", sum.TotalML)
	}
	if sum.TotalMinutes != 10 {
		t.Fatalf("total minutes: got %d, want 10", sum.TotalMinutes)
	}
	if sum.TotalUrine != 1 || sum.TotalPoop != 1 {
		t.Fatalf("dejection counts: got %d urine, %d poop", sum.TotalUrine, sum.TotalPoop)
	}
	if sum.LatestWeightKG == nil || *sum.LatestWeightKG != 3.2 {
		t.Fatalf("latest weight: got %v", sum.LatestWeightKG)
	}
}

func TestSummary_ByTypeEnumOrder(t *testing.T) {
	svc := newReportService(seededStore(t))

	sum, err := svc.Summary(context.Background(), "june", "2026-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only present subtypes appear, in fixed enum order.
	want := []domain.TypeCount{
		{Type: domain.FeedingBreastLeft, Count: 1},
		{Type: domain.FeedingBottle, Count: 2},
	}
	if len(sum.ByType) != len(want) {
		t.Fatalf("by_type: got %+v", sum.ByType)
	}
	for i := range want {
		if sum.ByType[i] != want[i] {
			t.Fatalf("by_type[%d]: got %+v, want %+v", i, sum.ByType[i], want[i])
		}
	}
}

func TestSummary_OpenEndedPeriod(t *testing.T) {
	svc := newReportService(seededStore(t))

	sum, err := svc.Summary(context.Background(), "june", "2026-03-01T12:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The noon bottle and the afternoon breast feed; the 08:00 one is before
	// the period.
	if sum.TotalFeedings != 2 {
		t.Fatalf("total feedings: got %d, want 2", sum.TotalFeedings)
	}
}

func TestSummary_EmptyPeriod(t *testing.T) {
	svc := newReportService(seededStore(t))

	sum, err := svc.Summary(context.Background(), "june", "2026-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalFeedings != 0 || sum.TotalML != 0 {
		t.Fatalf("expected zero totals, got %+v", sum)
	}
	if sum.LatestWeightKG != nil {
		t.Fatal("no weight data must mean nil, not zero")
	}
	if len(sum.ByType) != 0 {
		t.Fatalf("by_type should be empty, got %+v", sum.ByType)
	}
}

func TestTimeline_MergedOrderAndTieBreak(t *testing.T) {
	svc := newReportService(seededStore(t))

	entries, err := svc.Timeline(context.Background(), "june", "2026-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 08:00 feeding and 08:00 weight share a timestamp; the feeding wins.
	wantKinds := []string{
		domain.KindFeeding,   // 08:00 bottle
		domain.KindWeight,    // 08:00 weigh-in
		domain.KindDejection, // 08:05 urine
		domain.KindFeeding,   // 12:00 bottle
		domain.KindDejection, // 14:00 poop
		domain.KindFeeding,   // 16:00 breast
	}
	if len(entries) != len(wantKinds) {
		t.Fatalf("expected %d entries, got %d", len(wantKinds), len(entries))
	}
	for i, want := range wantKinds {
		if entries[i].Kind != want {
			t.Fatalf("position %d: got %s, want %s", i, entries[i].Kind, want)
		}
	}
}

func TestReport_EmptyMiddleDay(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	// Activity on 03-03 as well, leaving 03-02 empty.
	ts, _ := domain.ParseTimestamp("2026-03-03T09:00:00")
	if _, err := s.AddFeeding(ctx, domain.Feeding{
		BabyName: "june", Type: domain.FeedingSolid, Timestamp: ts,
	}); err != nil {
		t.Fatal(err)
	}

	days, err := newReportService(s).Report(ctx, "june", "2026-03-01", "2026-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}

	first := days[0]
	if first.Date != "2026-03-01" || first.TotalFeedings != 3 {
		t.Fatalf("first day: %+v", first)
	}
	if first.TotalML == nil || *first.TotalML != 210 {
		t.Fatalf("first day ml: %v", first.TotalML)
	}
	if first.BreastLeft != 1 || first.Bottle != 2 {
		t.Fatalf("first day per-type: %+v", first)
	}

	middle := days[1]
	if middle.Date != "2026-03-02" || middle.TotalFeedings != 0 {
		t.Fatalf("middle day: %+v", middle)
	}
	if middle.TotalML != nil || middle.TotalMinutes != nil || middle.WeightKG != nil {
		t.Fatalf("empty day optionals must be nil: %+v", middle)
	}

	last := days[2]
	if last.Date != "2026-03-03" || last.Solid != 1 {
		t.Fatalf("last day: %+v", last)
	}
	// A solid feed carries no volume; the day still has no ml data.
	if last.TotalML != nil {
		t.Fatalf("last day ml should be nil, got %v", *last.TotalML)
	}
}

func TestReport_EmptyRange(t *testing.T) {
	days, err := newReportService(seededStore(t)).Report(context.Background(), "june", "2026-03-02", "2026-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("start == end must yield no days, got %d", len(days))
	}
}

func TestChartDaily(t *testing.T) {
	svc := newReportService(seededStore(t))

	points, err := svc.ChartDaily(context.Background(), "june", "2026-03-02", 2, "lb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Day != "2026-03-01" || points[1].Day != "2026-03-02" {
		t.Fatalf("days: %s, %s", points[0].Day, points[1].Day)
	}

	w := points[0].Weight
	if w == nil || w.Unit != "lb" {
		t.Fatalf("weight point: %+v", w)
	}
	if math.Abs(w.Value-domain.ConvertWeight(3.2, "kg", "lb")) > 1e-9 {
		t.Fatalf("weight not converted: %v", w.Value)
	}
	if points[1].Weight != nil {
		t.Fatal("day without a weigh-in must have a nil weight point")
	}
}

func TestChartDaily_BadUnit(t *testing.T) {
	svc := newReportService(seededStore(t))
	if _, err := svc.ChartDaily(context.Background(), "june", "2026-03-01", 7, "stone"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
