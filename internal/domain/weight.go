package domain

import (
	"context"
	"fmt"
)

// Weight is one recorded weight measurement. WeightKG is required and
// strictly positive.
type Weight struct {
	ID        uint64    `json:"id"`
	BabyName  string    `json:"baby_name"`
	WeightKG  float64   `json:"weight_kg"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
}

// Validate checks the measurement value.
func (w Weight) Validate() error {
	if w.WeightKG <= 0 {
		return fmt.Errorf("%w: weight_kg must be positive, got %v", ErrValidation, w.WeightKG)
	}
	return nil
}

// WeightRepository is the port for the weight partition of the ledger.
type WeightRepository interface {
	AddWeight(ctx context.Context, w Weight) (uint64, error)
	UpdateWeight(ctx context.Context, id uint64, w Weight) error
	DeleteWeight(ctx context.Context, id uint64) error
	WeightsForRange(ctx context.Context, babyName string, from, to Timestamp) ([]Weight, error)
}
