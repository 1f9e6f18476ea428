package ledger_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"babylog/internal/domain"
	"babylog/internal/ledger"
)

func populated(t *testing.T) *ledger.Store {
	t.Helper()
	s := ledger.New()
	ctx := context.Background()

	if _, err := s.AddFeeding(ctx, domain.Feeding{
		BabyName: "june", Type: domain.FeedingBottle, AmountML: f64(90),
		Notes: "after nap", Timestamp: ts(t, "2026-03-01T08:00:00"),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddFeeding(ctx, domain.Feeding{
		BabyName: "june", Type: domain.FeedingBreastLeft, DurationMinutes: iptr(15),
		Timestamp: ts(t, "2026-03-01T11:00:00"),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddDejection(ctx, domain.Dejection{
		BabyName: "june", Type: domain.DejectionPoop, Timestamp: ts(t, "2026-03-01T09:00:00"),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddWeight(ctx, domain.Weight{
		BabyName: "june", WeightKG: 3.2, Timestamp: ts(t, "2026-03-01T10:00:00"),
	}); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestExportRestoreRoundTrip(t *testing.T) {
	s := populated(t)
	blob, err := s.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	loaded, err := ledger.Load(blob)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	blob2, err := loaded.Export()
	if err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if !bytes.Equal(blob, blob2) {
		t.Fatalf("round trip not lossless:\n%s\n%s", blob, blob2)
	}
}

func TestExportEmptyStore(t *testing.T) {
	blob, err := ledger.New().Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	loaded, err := ledger.Load(blob)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	id, err := loaded.AddFeeding(context.Background(), domain.Feeding{
		BabyName: "june", Type: domain.FeedingSolid, Timestamp: ts(t, "2026-03-01T12:00:00"),
	})
	if err != nil || id != 1 {
		t.Fatalf("first id after empty reload: got %d, %v", id, err)
	}
}

func TestExportIsDeterministic(t *testing.T) {
	s := populated(t)
	a, _ := s.Export()
	b, _ := s.Export()
	if !bytes.Equal(a, b) {
		t.Fatal("repeated exports must be byte-identical")
	}
}

func TestIDContinuityAfterReload(t *testing.T) {
	s := populated(t)
	ctx := context.Background()

	// Delete the highest feeding so the counter outruns max(id).
	if err := s.DeleteFeeding(ctx, 2); err != nil {
		t.Fatal(err)
	}
	blob, _ := s.Export()

	loaded, err := ledger.Load(blob)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	id, err := loaded.AddFeeding(ctx, domain.Feeding{
		BabyName: "june", Type: domain.FeedingBottle, Timestamp: ts(t, "2026-03-01T13:00:00"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if id != 3 {
		t.Fatalf("counter must survive the reload: got %d, want 3", id)
	}
}

func TestRestoreRecoversMissingCounters(t *testing.T) {
	// A blob without counters, as written before they were stored.
	blob := []byte(`{
		"feedings": [
			{"id": 4, "baby_name": "june", "feeding_type": "bottle", "amount_ml": 90, "timestamp": "2026-03-01T08:00:00"}
		],
		"dejections": [],
		"weights": []
	}`)

	s, err := ledger.Load(blob)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	id, err := s.AddFeeding(context.Background(), domain.Feeding{
		BabyName: "june", Type: domain.FeedingBottle, Timestamp: ts(t, "2026-03-01T09:00:00"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if id != 5 {
		t.Fatalf("recovered counter: got %d, want max(id)+1 = 5", id)
	}
}

func TestRestoreIgnoresStaleCounter(t *testing.T) {
	blob := []byte(`{
		"feedings": [
			{"id": 7, "baby_name": "june", "feeding_type": "solid", "timestamp": "2026-03-01T08:00:00"}
		],
		"next_feeding_id": 2
	}`)

	s, err := ledger.Load(blob)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	id, _ := s.AddFeeding(context.Background(), domain.Feeding{
		BabyName: "june", Type: domain.FeedingSolid, Timestamp: ts(t, "2026-03-01T09:00:00"),
	})
	if id != 8 {
		t.Fatalf("stale counter must be bumped past max(id): got %d, want 8", id)
	}
}

func TestRestoreRejectsMalformedBlobs(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", `{{{`},
		{"wrong shape", `[1, 2, 3]`},
		{"duplicate feeding id", `{"feedings": [
			{"id": 1, "feeding_type": "bottle", "timestamp": "2026-03-01T08:00:00"},
			{"id": 1, "feeding_type": "solid", "timestamp": "2026-03-01T09:00:00"}
		]}`},
		{"invalid subtype", `{"feedings": [
			{"id": 1, "feeding_type": "formula", "timestamp": "2026-03-01T08:00:00"}
		]}`},
		{"negative amount", `{"feedings": [
			{"id": 1, "feeding_type": "bottle", "amount_ml": -5, "timestamp": "2026-03-01T08:00:00"}
		]}`},
		{"zero weight", `{"weights": [
			{"id": 1, "weight_kg": 0, "timestamp": "2026-03-01T08:00:00"}
		]}`},
		{"bad timestamp", `{"dejections": [
			{"id": 1, "dejection_type": "urine", "timestamp": "soon"}
		]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ledger.Load([]byte(tc.blob)); !errors.Is(err, domain.ErrDecode) {
				t.Fatalf("expected decode error, got %v", err)
			}
		})
	}
}

func TestRestoreFailureLeavesStoreUnchanged(t *testing.T) {
	s := populated(t)
	before, _ := s.Export()

	if err := s.Restore([]byte(`{{{`)); !errors.Is(err, domain.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}

	after, _ := s.Export()
	if !bytes.Equal(before, after) {
		t.Fatal("failed restore must not touch the store")
	}
}

func TestRestoreReplacesEverything(t *testing.T) {
	s := populated(t)
	if err := s.Restore([]byte(`{"feedings": [], "dejections": [], "weights": []}`)); err != nil {
		t.Fatalf("restore: %v", err)
	}
	all, _ := s.ListFeedings(context.Background(), "", domain.NoLimit)
	if len(all) != 0 {
		t.Fatalf("restore must replace, not merge: %d entries left", len(all))
	}
}
