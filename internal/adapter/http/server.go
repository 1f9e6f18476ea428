// Package adapthttp implements the HTTP presentation adapter. It consumes
// the core only through the application services and flushes a fresh ledger
// snapshot after every successful mutation.
package adapthttp

import (
	"net/http"

	"babylog/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig carries the optional SSO wiring.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config oauth2.Config
}

// Config carries the non-service server settings.
type Config struct {
	WebDir      string
	DisableAuth bool
	OIDC        OIDCConfig
}

// Server routes requests to the application services.
type Server struct {
	feedings   *app.FeedingService
	dejections *app.DejectionService
	weights    *app.WeightService
	reports    *app.ReportService
	snapshots  *app.SnapshotService
	authSvc    *app.AuthService

	oidcConfig  OIDCConfig
	webDir      string
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(fs *app.FeedingService, ds *app.DejectionService, ws *app.WeightService, rs *app.ReportService, ss *app.SnapshotService, as *app.AuthService, cfg Config) *Server {
	return &Server{
		feedings:    fs,
		dejections:  ds,
		weights:     ws,
		reports:     rs,
		snapshots:   ss,
		authSvc:     as,
		oidcConfig:  cfg.OIDC,
		webDir:      cfg.WebDir,
		disableAuth: cfg.DisableAuth,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/feedings", s.handleFeedings)
	api.HandleFunc("/feedings/{id}", s.handleFeedingByID)
	api.HandleFunc("/dejections", s.handleDejections)
	api.HandleFunc("/dejections/{id}", s.handleDejectionByID)
	api.HandleFunc("/weights", s.handleWeights)
	api.HandleFunc("/weights/{id}", s.handleWeightByID)

	api.HandleFunc("/timeline", s.handleTimeline)
	api.HandleFunc("/summary", s.handleSummary)
	api.HandleFunc("/report", s.handleReport)
	api.HandleFunc("/charts/daily", s.handleChartsDaily)

	api.HandleFunc("/export", s.handleExport)
	api.HandleFunc("/import", s.handleImport)

	auth := http.NewServeMux()
	auth.HandleFunc("/auth/login", s.handleLogin)
	auth.HandleFunc("/auth/logout", s.handleLogout)
	auth.HandleFunc("/auth/setup", s.handleSetup)
	auth.HandleFunc("/auth/config", s.handleAuthConfig)
	auth.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	auth.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	root := http.NewServeMux()
	root.Handle("/api/auth/", http.StripPrefix("/api", auth))
	root.Handle("/api/", http.StripPrefix("/api", s.authMiddleware(api)))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}

// persist flushes the ledger after a mutation; on failure it reports 500 and
// tells the caller to stop.
func (s *Server) persist(w http.ResponseWriter, r *http.Request) bool {
	if err := s.snapshots.Flush(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return false
	}
	return true
}
