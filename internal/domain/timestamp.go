package domain

import (
	"fmt"
	"time"
)

// Layouts accepted at the boundary. The canonical form is the first one; the
// looser forms match what the original recording UI sends.
const (
	TimestampLayout = "2006-01-02T15:04:05"
	DateLayout      = "2006-01-02"
)

var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Timestamp is a naive local wall-clock date-time. It carries no zone or
// offset; the caller supplies it as text and gets it back as the same text.
// The core never reads the system clock.
type Timestamp struct {
	time.Time
}

// EndOfTime is the exclusive upper bound used for open-ended periods.
var EndOfTime = Timestamp{time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)}

// ParseTimestamp parses a wall-clock date-time in any accepted layout.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("%w: bad timestamp %q, want YYYY-MM-DDTHH:MM:SS", ErrValidation, s)
}

// ParseDate parses a calendar date, yielding the start of that day.
func ParseDate(s string) (Timestamp, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: bad date %q, want YYYY-MM-DD", ErrValidation, s)
	}
	return Timestamp{t}, nil
}

// AddDays returns the timestamp shifted by n calendar days.
func (ts Timestamp) AddDays(n int) Timestamp {
	return Timestamp{ts.Time.AddDate(0, 0, n)}
}

// DateString returns the calendar-date component.
func (ts Timestamp) DateString() string {
	return ts.Format(DateLayout)
}

// Before reports whether ts is strictly earlier than other.
func (ts Timestamp) Before(other Timestamp) bool {
	return ts.Time.Before(other.Time)
}

// String returns the canonical text form.
func (ts Timestamp) String() string {
	return ts.Format(TimestampLayout)
}

// MarshalJSON encodes the canonical text form.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.Format(TimestampLayout) + `"`), nil
}

// UnmarshalJSON accepts any of the boundary layouts.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("%w: timestamp must be a string", ErrValidation)
	}
	parsed, err := ParseTimestamp(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Period is a half-open time range [From, To). Open-ended periods use
// EndOfTime as the exclusive bound.
type Period struct {
	From Timestamp
	To   Timestamp
}

// ParsePeriod disambiguates the two accepted period forms by shape: a bare
// calendar date means that single day, a full date-time means everything at
// or after that instant.
func ParsePeriod(s string) (Period, error) {
	if day, err := ParseDate(s); err == nil {
		return Period{From: day, To: day.AddDays(1)}, nil
	}
	since, err := ParseTimestamp(s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: bad period %q, want YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS", ErrValidation, s)
	}
	return Period{From: since, To: EndOfTime}, nil
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t Timestamp) bool {
	return !t.Before(p.From) && t.Before(p.To)
}
