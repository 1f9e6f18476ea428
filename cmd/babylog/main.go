package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "babylog/internal/adapter/http"
	"babylog/internal/adapter/memory"
	"babylog/internal/adapter/postgres"
	"babylog/internal/app"
	"babylog/internal/domain"
	"babylog/internal/ledger"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")
	snapshotKey := env("SNAPSHOT_KEY", "ledger")
	disableAuth := os.Getenv("AUTH_DISABLED") == "true"

	ctx := context.Background()

	var (
		snapshotRepo  domain.SnapshotRepository
		caregiverRepo domain.CaregiverRepository
		sessionRepo   domain.SessionRepository
		closeDB       func() error
	)
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		snapshotRepo, caregiverRepo = db, db
		sessionRepo = postgres.NewSessionRepo(db)
		closeDB = db.Close
	} else {
		log.Print("DATABASE_URL not set, using in-memory storage")
		db := memory.New()
		snapshotRepo, caregiverRepo = db, db
		sessionRepo = db.NewSessionRepo()
		closeDB = func() error { return nil }
	}
	defer func() { _ = closeDB() }()

	store := ledger.New()
	snapshotSvc := app.NewSnapshotService(store, snapshotRepo, snapshotKey)
	if err := snapshotSvc.Load(ctx); err != nil {
		if !errors.Is(err, domain.ErrDecode) {
			log.Fatalf("snapshot load: %v", err)
		}
		// A corrupt snapshot must not brick the service; start empty and
		// leave the stored blob untouched until the next mutation.
		log.Printf("snapshot load: %v; starting with an empty ledger", err)
	}

	cfg := adapthttp.Config{
		WebDir:      webDir,
		DisableAuth: disableAuth,
		OIDC:        oidcFromEnv(ctx),
	}

	h := adapthttp.New(
		app.NewFeedingService(store),
		app.NewDejectionService(store),
		app.NewWeightService(store),
		app.NewReportService(store, store, store),
		snapshotSvc,
		app.NewAuthService(caregiverRepo, sessionRepo),
		cfg,
	).Handler()

	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func oidcFromEnv(ctx context.Context) adapthttp.OIDCConfig {
	issuer := os.Getenv("OIDC_ISSUER_URL")
	if issuer == "" {
		return adapthttp.OIDCConfig{}
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		log.Fatalf("oidc provider: %v", err)
	}
	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
