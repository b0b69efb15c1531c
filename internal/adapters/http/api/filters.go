// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/reel/internal/domain/types"
)

// FiltersDependencies defines the interface for filter-bounds operations.
type FiltersDependencies interface {
	Bounds(ctx context.Context) (types.Bounds, error)
}

// FiltersHandler serves the observed dataset extent for the UI controls.
type FiltersHandler struct {
	deps FiltersDependencies
}

// NewFiltersHandler creates a new filters handler.
func NewFiltersHandler(deps FiltersDependencies) *FiltersHandler {
	return &FiltersHandler{deps: deps}
}

// HandleGetFilters handles GET /filters requests.
func (h *FiltersHandler) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_filters"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	bounds, err := h.deps.Bounds(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, bounds)
}
