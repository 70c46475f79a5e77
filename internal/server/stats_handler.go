package server

import (
	"net/http"
	"strconv"

	"betlytics/internal/stats"
)

// statsFilterFrom builds an aggregation filter from the query string.
// year and month (0-indexed) are optional integers; category and
// event are optional strings.
func statsFilterFrom(r *http.Request) (stats.Filter, error) {
	var f stats.Filter
	q := r.URL.Query()

	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return f, err
		}
		f.Year = &year
	}
	if v := q.Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil || month < 0 || month > 11 {
			return f, strconv.ErrRange
		}
		f.Month = &month
	}
	f.Category = q.Get("category")
	f.Event = q.Get("event")

	return f, nil
}

func (s *Server) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	f, err := statsFilterFrom(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid filter")
		return
	}

	summary, err := s.deps.Stats.Summary(r.Context(), ownerFrom(r), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleStatsDaily(w http.ResponseWriter, r *http.Request) {
	f, err := statsFilterFrom(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid filter")
		return
	}

	daily, err := s.deps.Stats.Daily(r.Context(), ownerFrom(r), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if daily == nil {
		daily = []stats.DayProfit{}
	}
	respondJSON(w, http.StatusOK, daily)
}

func (s *Server) handleStatsByCategory(w http.ResponseWriter, r *http.Request) {
	f, err := statsFilterFrom(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid filter")
		return
	}

	dashboards, err := s.deps.Stats.ByCategory(r.Context(), ownerFrom(r), f)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dashboards)
}

func (s *Server) handleStatsFilters(w http.ResponseWriter, r *http.Request) {
	var year *int
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = &y
	}

	opts, err := s.deps.Stats.Filters(r.Context(), ownerFrom(r), year)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, opts)
}
