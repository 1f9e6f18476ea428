package domain

import (
	"context"
	"fmt"
	"strings"
)

// DejectionType is the closed set of diaper-event subtypes.
type DejectionType string

const (
	DejectionUrine DejectionType = "urine"
	DejectionPoop  DejectionType = "poop"
)

// ParseDejectionType parses a subtype string, accepting the short aliases
// u and p.
func ParseDejectionType(s string) (DejectionType, error) {
	switch strings.ToLower(s) {
	case "urine", "u":
		return DejectionUrine, nil
	case "poop", "p":
		return DejectionPoop, nil
	}
	return "", fmt.Errorf("%w: unknown dejection type %q, use urine (u) or poop (p)", ErrValidation, s)
}

// Dejection is one recorded diaper event.
type Dejection struct {
	ID        uint64        `json:"id"`
	BabyName  string        `json:"baby_name"`
	Type      DejectionType `json:"dejection_type"`
	Notes     string        `json:"notes,omitempty"`
	Timestamp Timestamp     `json:"timestamp"`
}

// Validate checks the subtype.
func (d Dejection) Validate() error {
	_, err := ParseDejectionType(string(d.Type))
	return err
}

// DejectionRepository is the port for the dejection partition of the ledger.
type DejectionRepository interface {
	AddDejection(ctx context.Context, d Dejection) (uint64, error)
	UpdateDejection(ctx context.Context, id uint64, d Dejection) error
	DeleteDejection(ctx context.Context, id uint64) error
	DejectionsForRange(ctx context.Context, babyName string, from, to Timestamp) ([]Dejection, error)
}
