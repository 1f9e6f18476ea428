package adapthttp

import (
	"net/http"

	"babylog/internal/domain"
)

type feedingBody struct {
	BabyName        string   `json:"baby_name"`
	FeedingType     string   `json:"feeding_type"`
	AmountML        *float64 `json:"amount_ml"`
	DurationMinutes *int     `json:"duration_minutes"`
	Notes           string   `json:"notes"`
	Timestamp       string   `json:"timestamp"`
}

func (s *Server) handleFeedings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		name := r.URL.Query().Get("name")
		if date := r.URL.Query().Get("date"); date != "" {
			items, err := s.feedings.ListForDay(r.Context(), name, date)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"date": date, "items": items})
			return
		}
		limit := intQuery(r, "limit", domain.NoLimit)
		items, err := s.feedings.ListRecent(r.Context(), name, limit)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body feedingBody
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := s.feedings.Record(r.Context(), body.BabyName, body.FeedingType, body.AmountML, body.DurationMinutes, body.Notes, body.Timestamp)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if !s.persist(w, r) {
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleFeedingByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body feedingBody
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.feedings.Update(r.Context(), id, body.FeedingType, body.AmountML, body.DurationMinutes, body.Notes, body.Timestamp); err != nil {
			writeDomainError(w, err)
			return
		}
		if !s.persist(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	case http.MethodDelete:
		if err := s.feedings.Delete(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		if !s.persist(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
