package adapthttp

import "net/http"

type dejectionBody struct {
	BabyName      string `json:"baby_name"`
	DejectionType string `json:"dejection_type"`
	Notes         string `json:"notes"`
	Timestamp     string `json:"timestamp"`
}

func (s *Server) handleDejections(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		name := r.URL.Query().Get("name")
		date := r.URL.Query().Get("date")
		items, err := s.dejections.ListForDay(r.Context(), name, date)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"date": date, "items": items})

	case http.MethodPost:
		var body dejectionBody
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := s.dejections.Record(r.Context(), body.BabyName, body.DejectionType, body.Notes, body.Timestamp)
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

func (s *Server) handleDejectionByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body dejectionBody
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.dejections.Update(r.Context(), id, body.DejectionType, body.Notes, body.Timestamp); err != nil {
			writeDomainError(w, err)
			return
		}
		if !s.persist(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	case http.MethodDelete:
		if err := s.dejections.Delete(r.Context(), id); err != nil {
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
