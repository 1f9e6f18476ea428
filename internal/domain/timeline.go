package domain

// Kind discriminators used by the merged timeline.
const (
	KindFeeding   = "feeding"
	KindDejection = "dejection"
	KindWeight    = "weight"
)

// TimelineEntry projects any entry kind into one common display shape.
// Fields that do not apply to the kind are absent.
type TimelineEntry struct {
	Kind            string    `json:"kind"`
	ID              uint64    `json:"id"`
	BabyName        string    `json:"baby_name"`
	Subtype         string    `json:"subtype,omitempty"`
	AmountML        *float64  `json:"amount_ml,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	WeightKG        *float64  `json:"weight_kg,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Timestamp       Timestamp `json:"timestamp"`
}

// TimelineFromFeeding projects a feeding.
func TimelineFromFeeding(f Feeding) TimelineEntry {
	return TimelineEntry{
		Kind:            KindFeeding,
		ID:              f.ID,
		BabyName:        f.BabyName,
		Subtype:         string(f.Type),
		AmountML:        f.AmountML,
		DurationMinutes: f.DurationMinutes,
		Notes:           f.Notes,
		Timestamp:       f.Timestamp,
	}
}

// TimelineFromDejection projects a dejection.
func TimelineFromDejection(d Dejection) TimelineEntry {
	return TimelineEntry{
		Kind:      KindDejection,
		ID:        d.ID,
		BabyName:  d.BabyName,
		Subtype:   string(d.Type),
		Notes:     d.Notes,
		Timestamp: d.Timestamp,
	}
}

// TimelineFromWeight projects a weight measurement.
func TimelineFromWeight(w Weight) TimelineEntry {
	kg := w.WeightKG
	return TimelineEntry{
		Kind:      KindWeight,
		ID:        w.ID,
		BabyName:  w.BabyName,
		WeightKG:  &kg,
		Notes:     w.Notes,
		Timestamp: w.Timestamp,
	}
}

// KindRank orders kinds for timestamp tie-breaking: feedings sort before
// dejections, dejections before weights. Pinned by the timeline tests.
func KindRank(kind string) int {
	switch kind {
	case KindFeeding:
		return 0
	case KindDejection:
		return 1
	default:
		return 2
	}
}
