package adapthttp

import "net/http"

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	name := r.URL.Query().Get("name")
	date := r.URL.Query().Get("date")

	entries, err := s.reports.Timeline(r.Context(), name, date)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": date, "items": entries})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	name := r.URL.Query().Get("name")
	period := r.URL.Query().Get("period")

	summary, err := s.reports.Summary(r.Context(), name, period)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"period": period, "summary": summary})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	days, err := s.reports.Report(r.Context(), q.Get("name"), q.Get("start"), q.Get("end"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"start": q.Get("start"),
		"end":   q.Get("end"),
		"items": days,
	})
}

func (s *Server) handleChartsDaily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	days := intQuery(r, "days", 90)
	unit := q.Get("unit")
	if unit == "" {
		unit = "kg"
	}

	// The window ends on the caller-supplied date; the core never reads the
	// clock.
	points, err := s.reports.ChartDaily(r.Context(), q.Get("name"), q.Get("end"), days, unit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"days":  days,
		"unit":  unit,
		"items": points,
	})
}
