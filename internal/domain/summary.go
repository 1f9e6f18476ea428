package domain

// TypeCount is one by-type aggregation pair. Pairs keep the fixed enum order
// of FeedingTypes and only appear when the count is nonzero.
type TypeCount struct {
	Type  FeedingType `json:"type"`
	Count int         `json:"count"`
}

// Summary aggregates one day or one open-ended period. LatestWeightKG is nil
// when the period holds no weight entry; an absent weight is never reported
// as zero.
type Summary struct {
	TotalFeedings  int         `json:"total_feedings"`
	TotalML        float64     `json:"total_ml"`
	TotalMinutes   int         `json:"total_minutes"`
	ByType         []TypeCount `json:"by_type"`
	TotalUrine     int         `json:"total_urine"`
	TotalPoop      int         `json:"total_poop"`
	LatestWeightKG *float64    `json:"latest_weight_kg"`
}

// DaySummary is one day of a multi-day report. TotalML and TotalMinutes are
// nil when no feeding that day carried the corresponding value, so charts can
// tell "no data" apart from a true zero. Counts are plain zeros on empty
// days.
type DaySummary struct {
	Date          string   `json:"date"`
	TotalFeedings int      `json:"total_feedings"`
	TotalML       *float64 `json:"total_ml"`
	TotalMinutes  *int     `json:"total_minutes"`
	BreastLeft    int      `json:"breast_left"`
	BreastRight   int      `json:"breast_right"`
	Bottle        int      `json:"bottle"`
	Solid         int      `json:"solid"`
	TotalUrine    int      `json:"total_urine"`
	TotalPoop     int      `json:"total_poop"`
	WeightKG      *float64 `json:"weight_kg"`
}
