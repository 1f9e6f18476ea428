package app

import (
	"context"
	"fmt"
	"sort"

	"babylog/internal/domain"
)

// ReportService is the read side: it derives day timelines, summaries and
// multi-day reports from the per-kind ledger ports. It never mutates state.
type ReportService struct {
	feedings   domain.FeedingRepository
	dejections domain.DejectionRepository
	weights    domain.WeightRepository
}

// NewReportService creates a ReportService over the given repositories.
func NewReportService(f domain.FeedingRepository, d domain.DejectionRepository, w domain.WeightRepository) *ReportService {
	return &ReportService{feedings: f, dejections: d, weights: w}
}

// Timeline merges all three entry kinds for one calendar day into a single
// ascending sequence. Entries sharing a timestamp order feeding, dejection,
// weight; within one kind, ascending id.
func (s *ReportService) Timeline(ctx context.Context, babyName, date string) ([]domain.TimelineEntry, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	entries, err := s.collect(ctx, babyName, day, day.AddDays(1))
	if err != nil {
		return nil, err
	}

	feedings, dejections, weights := entries.feedings, entries.dejections, entries.weights
	merged := make([]domain.TimelineEntry, 0, len(feedings)+len(dejections)+len(weights))
	for _, f := range feedings {
		merged = append(merged, domain.TimelineFromFeeding(f))
	}
	for _, d := range dejections {
		merged = append(merged, domain.TimelineFromDejection(d))
	}
	for _, w := range weights {
		merged = append(merged, domain.TimelineFromWeight(w))
	}
	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if !a.Timestamp.Equal(b.Timestamp.Time) {
			return a.Timestamp.Before(b.Timestamp)
		}
		if ra, rb := domain.KindRank(a.Kind), domain.KindRank(b.Kind); ra != rb {
			return ra < rb
		}
		return a.ID < b.ID
	})
	return merged, nil
}

// Summary aggregates one period. The period string is disambiguated by
// shape: a bare date covers that single day, a full date-time covers
// everything at or after that instant.
func (s *ReportService) Summary(ctx context.Context, babyName, period string) (domain.Summary, error) {
	p, err := domain.ParsePeriod(period)
	if err != nil {
		return domain.Summary{}, err
	}
	entries, err := s.collect(ctx, babyName, p.From, p.To)
	if err != nil {
		return domain.Summary{}, err
	}
	return summarize(entries), nil
}

// Report returns one DaySummary per calendar day in [startDate, endDate).
// Days with no entries still appear with zero counts and nil weight, volume
// and duration.
func (s *ReportService) Report(ctx context.Context, babyName, startDate, endDate string) ([]domain.DaySummary, error) {
	start, err := domain.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseDate(endDate)
	if err != nil {
		return nil, err
	}

	days := make([]domain.DaySummary, 0)
	for day := start; day.Before(end); day = day.AddDays(1) {
		entries, err := s.collect(ctx, babyName, day, day.AddDays(1))
		if err != nil {
			return nil, err
		}
		days = append(days, summarizeDay(day.DateString(), entries))
	}
	return days, nil
}

// ChartPoint is one day of chart data, with the weight converted to the
// requested display unit.
type ChartPoint struct {
	Day      string       `json:"day"`
	TotalML  *float64     `json:"total_ml"`
	Feedings int          `json:"feedings"`
	Weight   *WeightPoint `json:"weight"`
}

// WeightPoint is the optional weight value within a ChartPoint.
type WeightPoint struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ChartDaily returns per-day chart data for the days-long window ending on
// endDate, with weights converted to the requested unit. The caller supplies
// "today" explicitly; the service never reads the clock.
func (s *ReportService) ChartDaily(ctx context.Context, babyName, endDate string, days int, unit string) ([]ChartPoint, error) {
	if unit != "kg" && unit != "lb" {
		return nil, fmt.Errorf("%w: unit must be \"kg\" or \"lb\"", domain.ErrValidation)
	}
	if days < 1 {
		days = 1
	}
	if days > 366 {
		days = 366
	}
	end, err := domain.ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	start := end.AddDays(1 - days)

	report, err := s.Report(ctx, babyName, start.DateString(), end.AddDays(1).DateString())
	if err != nil {
		return nil, err
	}
	points := make([]ChartPoint, 0, len(report))
	for _, d := range report {
		p := ChartPoint{Day: d.Date, TotalML: d.TotalML, Feedings: d.TotalFeedings}
		if d.WeightKG != nil {
			p.Weight = &WeightPoint{Value: domain.ConvertWeight(*d.WeightKG, "kg", unit), Unit: unit}
		}
		points = append(points, p)
	}
	return points, nil
}

type rangeEntries struct {
	feedings   []domain.Feeding
	dejections []domain.Dejection
	weights    []domain.Weight
}

func (s *ReportService) collect(ctx context.Context, babyName string, from, to domain.Timestamp) (rangeEntries, error) {
	var entries rangeEntries
	var err error
	if entries.feedings, err = s.feedings.FeedingsForRange(ctx, babyName, from, to); err != nil {
		return rangeEntries{}, err
	}
	if entries.dejections, err = s.dejections.DejectionsForRange(ctx, babyName, from, to); err != nil {
		return rangeEntries{}, err
	}
	if entries.weights, err = s.weights.WeightsForRange(ctx, babyName, from, to); err != nil {
		return rangeEntries{}, err
	}
	return entries, nil
}

// summarize computes period aggregates. Absent optional fields contribute
// nothing to the sums; an absent weight stays nil rather than zero.
func summarize(entries rangeEntries) domain.Summary {
	sum := domain.Summary{ByType: []domain.TypeCount{}}

	counts := make(map[domain.FeedingType]int)
	for _, f := range entries.feedings {
		sum.TotalFeedings++
		if f.AmountML != nil {
			sum.TotalML += *f.AmountML
		}
		if f.DurationMinutes != nil {
			sum.TotalMinutes += *f.DurationMinutes
		}
		counts[f.Type]++
	}
	for _, ft := range domain.FeedingTypes() {
		if counts[ft] > 0 {
			sum.ByType = append(sum.ByType, domain.TypeCount{Type: ft, Count: counts[ft]})
		}
	}

	for _, d := range entries.dejections {
		switch d.Type {
		case domain.DejectionUrine:
			sum.TotalUrine++
		case domain.DejectionPoop:
			sum.TotalPoop++
		}
	}

	// Range queries come back ascending, so the last weight is the latest.
	if n := len(entries.weights); n > 0 {
		kg := entries.weights[n-1].WeightKG
		sum.LatestWeightKG = &kg
	}
	return sum
}

func summarizeDay(date string, entries rangeEntries) domain.DaySummary {
	day := domain.DaySummary{Date: date}

	var ml float64
	var minutes int
	var haveML, haveMinutes bool
	for _, f := range entries.feedings {
		day.TotalFeedings++
		if f.AmountML != nil {
			ml += *f.AmountML
			haveML = true
		}
		if f.DurationMinutes != nil {
			minutes += *f.DurationMinutes
			haveMinutes = true
		}
		switch f.Type {
		case domain.FeedingBreastLeft:
			day.BreastLeft++
		case domain.FeedingBreastRight:
			day.BreastRight++
		case domain.FeedingBottle:
			day.Bottle++
		case domain.FeedingSolid:
			day.Solid++
		}
	}
	if haveML {
		day.TotalML = &ml
	}
	if haveMinutes {
		day.TotalMinutes = &minutes
	}

	for _, d := range entries.dejections {
		switch d.Type {
		case domain.DejectionUrine:
			day.TotalUrine++
		case domain.DejectionPoop:
			day.TotalPoop++
		}
	}

	if n := len(entries.weights); n > 0 {
		kg := entries.weights[n-1].WeightKG
		day.WeightKG = &kg
	}
	return day
}
