// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/okian/reel/internal/domain/model"
	"github.com/okian/reel/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Report recomputes every result table for the selection.
	Report(ctx context.Context, sel model.Selection) (types.Report, error)

	// Filmography returns the filtered films as poster-grid cells.
	Filmography(ctx context.Context, sel model.Selection) ([]types.Card, error)

	// Bounds exposes the observed year extent and motif labels.
	Bounds(ctx context.Context) (types.Bounds, error)

	// Reload re-reads the dataset and swaps the cache.
	Reload(ctx context.Context) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	reportHandler    *ReportHandler
	filmsHandler     *FilmsHandler
	filtersHandler   *FiltersHandler
	reloadHandler    *ReloadHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		reportHandler:    NewReportHandler(deps),
		filmsHandler:     NewFilmsHandler(deps),
		filtersHandler:   NewFiltersHandler(deps),
		reloadHandler:    NewReloadHandler(deps),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/report", RequestIDMiddleware(MetricsMiddleware(s.reportHandler.HandleGetReport, "report")))
	mux.HandleFunc("/films", RequestIDMiddleware(MetricsMiddleware(s.filmsHandler.HandleGetFilms, "films")))
	mux.HandleFunc("/filters", RequestIDMiddleware(MetricsMiddleware(s.filtersHandler.HandleGetFilters, "filters")))
	mux.HandleFunc("/reload", RequestIDMiddleware(MetricsMiddleware(s.reloadHandler.HandlePostReload, "reload")))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// parseSelection builds a Selection from query parameters, defaulting absent
// year bounds to the observed extent and an absent motif to the sentinel.
func parseSelection(r *http.Request, bounds types.Bounds) (model.Selection, error) {
	sel := model.Selection{
		YearMin: bounds.YearMin,
		YearMax: bounds.YearMax,
		Motif:   model.MotifAll,
	}

	q := r.URL.Query()
	if v := q.Get("year_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return model.Selection{}, ErrBadYear
		}
		sel.YearMin = n
	}
	if v := q.Get("year_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return model.Selection{}, ErrBadYear
		}
		sel.YearMax = n
	}
	if v := q.Get("motif"); v != "" {
		sel.Motif = v
	}

	if sel.YearMin > sel.YearMax {
		return model.Selection{}, ErrYearRange
	}
	return sel, nil
}
