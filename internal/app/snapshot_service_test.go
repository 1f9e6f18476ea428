package app_test

import (
	"context"
	"errors"
	"testing"

	"babylog/internal/adapter/memory"
	"babylog/internal/app"
	"babylog/internal/domain"
	"babylog/internal/ledger"
)

func TestSnapshotService_LoadMissingBlobIsNotAnError(t *testing.T) {
	store := ledger.New()
	svc := app.NewSnapshotService(store, memory.New(), "ledger")

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("missing blob must load as empty: %v", err)
	}
}

func TestSnapshotService_FlushThenLoad(t *testing.T) {
	ctx := context.Background()
	db := memory.New()

	store := ledger.New()
	ts, _ := domain.ParseTimestamp("2026-03-01T08:00:00")
	if _, err := store.AddFeeding(ctx, domain.Feeding{
		BabyName: "june", Type: domain.FeedingBottle, Timestamp: ts,
	}); err != nil {
		t.Fatal(err)
	}
	if err := app.NewSnapshotService(store, db, "ledger").Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}

	// A fresh process sees the flushed state.
	reloaded := ledger.New()
	if err := app.NewSnapshotService(reloaded, db, "ledger").Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	all, err := reloaded.ListFeedings(ctx, "", domain.NoLimit)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].BabyName != "june" {
		t.Fatalf("reloaded state: %+v", all)
	}
}

func TestSnapshotService_LoadSurfacesDecodeErrors(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	if err := db.Set(ctx, "ledger", []byte(`{{{`)); err != nil {
		t.Fatal(err)
	}

	svc := app.NewSnapshotService(ledger.New(), db, "ledger")
	if err := svc.Load(ctx); !errors.Is(err, domain.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestSnapshotService_ImportRejectsBadBlobAndKeepsState(t *testing.T) {
	ctx := context.Background()
	db := memory.New()

	store := ledger.New()
	ts, _ := domain.ParseTimestamp("2026-03-01T08:00:00")
	if _, err := store.AddFeeding(ctx, domain.Feeding{
		BabyName: "june", Type: domain.FeedingBottle, Timestamp: ts,
	}); err != nil {
		t.Fatal(err)
	}
	svc := app.NewSnapshotService(store, db, "ledger")

	if err := svc.Import(ctx, []byte(`not json`)); !errors.Is(err, domain.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	all, _ := store.ListFeedings(ctx, "", domain.NoLimit)
	if len(all) != 1 {
		t.Fatalf("failed import must not touch the ledger: %+v", all)
	}
}

func TestSnapshotService_ImportReplacesAndPersists(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	store := ledger.New()
	svc := app.NewSnapshotService(store, db, "ledger")

	blob := []byte(`{"feedings": [
		{"id": 1, "baby_name": "june", "feeding_type": "solid", "timestamp": "2026-03-01T12:00:00"}
	], "dejections": [], "weights": [],
	"next_feeding_id": 2, "next_dejection_id": 1, "next_weight_id": 1}`)

	if err := svc.Import(ctx, blob); err != nil {
		t.Fatalf("import: %v", err)
	}

	all, _ := store.ListFeedings(ctx, "", domain.NoLimit)
	if len(all) != 1 || all[0].Type != domain.FeedingSolid {
		t.Fatalf("imported state: %+v", all)
	}

	// The import was flushed to storage.
	stored, ok, err := db.Get(ctx, "ledger")
	if err != nil || !ok {
		t.Fatalf("expected persisted blob: %v", err)
	}
	if len(stored) == 0 {
		t.Fatal("persisted blob is empty")
	}
}
