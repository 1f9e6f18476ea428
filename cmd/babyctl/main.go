// babyctl is the command-line front end. It keeps the whole ledger in a
// SQLite-backed snapshot under the user's home directory and flushes it
// after every mutation.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"babylog/internal/adapter/sqlite"
	"babylog/internal/app"
	"babylog/internal/domain"
	"babylog/internal/ledger"
)

const snapshotKey = "ledger"

// App bundles the services the commands act on.
type App struct {
	feedings   *app.FeedingService
	dejections *app.DejectionService
	weights    *app.WeightService
	reports    *app.ReportService
	snapshots  *app.SnapshotService
}

// flush persists the ledger after a mutation.
func (a *App) flush(ctx context.Context) error {
	return a.snapshots.Flush(ctx)
}

func main() {
	db, err := sqlite.Open(dbPath())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	store := ledger.New()
	snapshots := app.NewSnapshotService(store, db, snapshotKey)
	if err := snapshots.Load(context.Background()); err != nil {
		if !errors.Is(err, domain.ErrDecode) {
			log.Fatalf("load ledger: %v", err)
		}
		log.Printf("load ledger: %v; starting empty", err)
	}

	a := &App{
		feedings:   app.NewFeedingService(store),
		dejections: app.NewDejectionService(store),
		weights:    app.NewWeightService(store),
		reports:    app.NewReportService(store, store, store),
		snapshots:  snapshots,
	}

	if err := SetupCommands(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dbPath() string {
	if p := os.Getenv("BABYLOG_DB"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "babylog.db"
	}
	return filepath.Join(home, ".babylog", "babylog.db")
}
