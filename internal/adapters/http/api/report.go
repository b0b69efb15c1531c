// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/reel/internal/domain/model"
	"github.com/okian/reel/internal/domain/types"
)

// ReportDependencies defines the interface for report operations.
type ReportDependencies interface {
	Report(ctx context.Context, sel model.Selection) (types.Report, error)
	Bounds(ctx context.Context) (types.Bounds, error)
}

// ReportHandler handles report requests.
type ReportHandler struct {
	deps ReportDependencies
}

// NewReportHandler creates a new report handler.
func NewReportHandler(deps ReportDependencies) *ReportHandler {
	return &ReportHandler{deps: deps}
}

// HandleGetReport handles GET /report?year_min=&year_max=&motif= requests.
// Absent year bounds default to the observed extent; an unknown motif yields
// an empty subset rather than an error.
func (h *ReportHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_report"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	bounds, err := h.deps.Bounds(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	sel, err := parseSelection(r, bounds)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	rep, err := h.deps.Report(r.Context(), sel)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
