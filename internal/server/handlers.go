package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/agroclim/climate-cli/internal/analytics"
	"github.com/agroclim/climate-cli/internal/chartspec"
	"github.com/agroclim/climate-cli/internal/dataset"
)

// summaryResponse is the dataset metadata handed to the frontend on load.
type summaryResponse struct {
	SourcePath   string               `json:"source_path"`
	Header       []string             `json:"header"`
	Schema       dataset.Schema       `json:"schema"`
	Capabilities dataset.Capabilities `json:"capabilities"`
	RowsLoaded   int                  `json:"rows_loaded"`
	RowsDropped  int                  `json:"rows_dropped"`
	LoadedAt     string               `json:"loaded_at"`
	FirstYear    int                  `json:"first_year"`
	LastYear     int                  `json:"last_year"`
	Years        []int                `json:"years"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if _, err := s.provider.Table(); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok {
		return
	}
	first, last := t.YearRange()
	writeJSON(w, http.StatusOK, summaryResponse{
		SourcePath:   t.SourcePath,
		Header:       t.Header,
		Schema:       t.Schema,
		Capabilities: t.Capabilities,
		RowsLoaded:   t.RowsLoaded,
		RowsDropped:  t.RowsDropped,
		LoadedAt:     t.LoadedAt.UTC().Format("2006-01-02T15:04:05Z"),
		FirstYear:    first,
		LastYear:     last,
		Years:        t.Years(),
	})
}

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, chartspec.Pages(t.Capabilities))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok {
		return
	}
	page, found := chartspec.PageBySlug(t.Capabilities, chi.URLParam(r, "slug"))
	if !found {
		writeError(w, http.StatusNotFound, "unknown page")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleAnnualTemperature(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok || !s.requireCapability(w, t.Capabilities.TempMean, "temp_mean") {
		return
	}
	writeJSON(w, http.StatusOK, chartspec.AnnualTemperature(analytics.YearlyMeanTemp(t)))
}

func (s *Server) handleAnnualPrecipitation(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok || !s.requireCapability(w, t.Capabilities.Precipitation, "precipitation") {
		return
	}
	writeJSON(w, http.StatusOK, chartspec.AnnualPrecipitation(analytics.AnnualPrecipTotals(t)))
}

func (s *Server) handleTemperatureDistribution(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok || !s.requireCapability(w, t.Capabilities.TempMean, "temp_mean") {
		return
	}
	writeJSON(w, http.StatusOK, chartspec.TemperatureDistribution(analytics.CompareEras(t, analytics.DefaultHistogramBins)))
}

func (s *Server) handleMonthlyHeatmap(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok || !s.requireCapability(w, t.Capabilities.TempMean, "temp_mean") {
		return
	}
	writeJSON(w, http.StatusOK, chartspec.MonthlyHeatmap(analytics.MonthlyTempMatrix(t)))
}

func (s *Server) handleMonthlyPrecipitation(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok || !s.requireCapability(w, t.Capabilities.Precipitation, "precipitation") {
		return
	}
	writeJSON(w, http.StatusOK, chartspec.MonthlyPrecipitation(analytics.MonthlyPrecipBoxes(t)))
}

func (s *Server) handleAnnualProfile(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok || !s.requireCapability(w, t.Capabilities.TempMean, "temp_mean") {
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be an integer")
		return
	}
	profile, found := analytics.YearProfile(t, year)
	if !found {
		writeError(w, http.StatusBadRequest, "year not present in dataset")
		return
	}
	writeJSON(w, http.StatusOK, chartspec.AnnualProfile(profile, analytics.MetricsForYear(t, year)))
}

func (s *Server) handleDecadal(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok {
		return
	}
	variable := analytics.Variable(r.URL.Query().Get("variable"))
	if variable == "" {
		variable = analytics.VariableTemperature
	}
	if !analytics.ValidVariable(variable) {
		writeError(w, http.StatusBadRequest, "variable must be temperature or precipitation")
		return
	}
	needed := t.Capabilities.TempMean
	field := "temp_mean"
	if variable == analytics.VariablePrecipitation {
		needed = t.Capabilities.Precipitation
		field = "precipitation"
	}
	if !s.requireCapability(w, needed, field) {
		return
	}
	writeJSON(w, http.StatusOK, chartspec.Decadal(analytics.DecadalMonthlyMeans(t, variable), variable))
}

func (s *Server) handleSeasonal(w http.ResponseWriter, r *http.Request) {
	t, ok := s.table(w)
	if !ok {
		return
	}
	season := dataset.Season(r.URL.Query().Get("season"))
	if !dataset.ValidSeason(season) {
		writeError(w, http.StatusBadRequest, "season must be Winter, Spring, Summer, or Fall")
		return
	}
	if !s.requireCapability(w, t.Capabilities.TempMean || t.Capabilities.Precipitation, "temp_mean|precipitation") {
		return
	}
	writeJSON(w, http.StatusOK, chartspec.Seasonal(analytics.SeasonSummary(t, season), t.Capabilities))
}

// table fetches the memoized table, writing a 500 on failure. Load errors
// are terminal at startup, so a failure here means the source file changed
// underneath us and the reload failed.
func (s *Server) table(w http.ResponseWriter) (*dataset.Table, bool) {
	t, err := s.provider.Table()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return t, true
}

// requireCapability writes a 409 when a chart's backing field could not be
// derived from the source schema. Consumers are expected to branch on the
// summary's capability flags and never hit this.
func (s *Server) requireCapability(w http.ResponseWriter, have bool, field string) bool {
	if !have {
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "capability_missing",
			"field": field,
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
