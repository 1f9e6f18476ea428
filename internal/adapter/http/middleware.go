package adapthttp

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"babylog/internal/app"
	"babylog/internal/domain"
)

type contextKey string

const caregiverContextKey contextKey = "caregiver"

// authMiddleware validates forward-auth headers and session cookies.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.disableAuth {
			next.ServeHTTP(w, r)
			return
		}

		// Trusted reverse-proxy forward auth takes precedence.
		if remoteUser := r.Header.Get("Remote-User"); remoteUser != "" {
			cg, err := s.authSvc.ValidateForwardAuth(r.Context(), remoteUser)
			if err == nil && cg != nil {
				next.ServeHTTP(w, r.WithContext(withCaregiver(r.Context(), cg)))
				return
			}
		}

		cookie, err := r.Cookie("session")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		cg, err := s.authSvc.ValidateSession(r.Context(), cookie.Value, r.UserAgent())
		if errors.Is(err, app.ErrSessionNotFound) || errors.Is(err, app.ErrSessionExpired) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err != nil || cg == nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(withCaregiver(r.Context(), cg)))
	})
}

func withCaregiver(ctx context.Context, cg *domain.Caregiver) context.Context {
	return context.WithValue(ctx, caregiverContextKey, cg)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs one line per request: method, path, status, elapsed.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
