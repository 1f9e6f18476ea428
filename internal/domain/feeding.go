// Package domain contains the core entities, value types and ports of the
// activity ledger.
package domain

import (
	"context"
	"fmt"
	"strings"
)

// FeedingType is the closed set of feeding subtypes.
type FeedingType string

const (
	FeedingBreastLeft  FeedingType = "breast-left"
	FeedingBreastRight FeedingType = "breast-right"
	FeedingBottle      FeedingType = "bottle"
	FeedingSolid       FeedingType = "solid"
)

// FeedingTypes returns every subtype in fixed enum order. Aggregations that
// report per-type counts iterate this order.
func FeedingTypes() []FeedingType {
	return []FeedingType{FeedingBreastLeft, FeedingBreastRight, FeedingBottle, FeedingSolid}
}

// ParseFeedingType parses a subtype string, accepting the short aliases used
// by the CLI (bl, br, b, s).
func ParseFeedingType(s string) (FeedingType, error) {
	switch strings.ToLower(s) {
	case "breast-left", "bl":
		return FeedingBreastLeft, nil
	case "breast-right", "br":
		return FeedingBreastRight, nil
	case "bottle", "b":
		return FeedingBottle, nil
	case "solid", "s":
		return FeedingSolid, nil
	}
	return "", fmt.Errorf("%w: unknown feeding type %q, use breast-left (bl), breast-right (br), bottle (b), solid (s)", ErrValidation, s)
}

// Feeding is one recorded feeding event. AmountML is meaningful mainly for
// bottle feeds, DurationMinutes mainly for breast feeds; both are optional
// and nil means "not recorded", which is distinct from zero.
type Feeding struct {
	ID              uint64      `json:"id"`
	BabyName        string      `json:"baby_name"`
	Type            FeedingType `json:"feeding_type"`
	AmountML        *float64    `json:"amount_ml,omitempty"`
	DurationMinutes *int        `json:"duration_minutes,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	Timestamp       Timestamp   `json:"timestamp"`
}

// Validate checks the subtype and numeric ranges.
func (f Feeding) Validate() error {
	if _, err := ParseFeedingType(string(f.Type)); err != nil {
		return err
	}
	if f.AmountML != nil && *f.AmountML < 0 {
		return fmt.Errorf("%w: amount_ml must be non-negative, got %v", ErrValidation, *f.AmountML)
	}
	if f.DurationMinutes != nil && *f.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration_minutes must be non-negative, got %d", ErrValidation, *f.DurationMinutes)
	}
	return nil
}

// NoLimit requests an untruncated listing. A limit of zero yields an empty
// listing; these semantics are pinned by the store tests.
const NoLimit = -1

// FeedingRepository is the port for the feeding partition of the ledger.
type FeedingRepository interface {
	AddFeeding(ctx context.Context, f Feeding) (uint64, error)
	UpdateFeeding(ctx context.Context, id uint64, f Feeding) error
	DeleteFeeding(ctx context.Context, id uint64) error
	// ListFeedings returns entries most recent first, optionally filtered by
	// baby name, truncated to limit.
	ListFeedings(ctx context.Context, babyName string, limit int) ([]Feeding, error)
	// FeedingsForRange returns entries with from <= timestamp < to in
	// ascending timestamp order.
	FeedingsForRange(ctx context.Context, babyName string, from, to Timestamp) ([]Feeding, error)
}
