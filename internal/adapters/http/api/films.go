// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/reel/internal/domain/model"
	"github.com/okian/reel/internal/domain/types"
)

// FilmsDependencies defines the interface for filmography operations.
type FilmsDependencies interface {
	Filmography(ctx context.Context, sel model.Selection) ([]types.Card, error)
	Bounds(ctx context.Context) (types.Bounds, error)
}

// FilmsHandler handles filmography grid requests.
type FilmsHandler struct {
	deps FilmsDependencies
}

// NewFilmsHandler creates a new films handler.
func NewFilmsHandler(deps FilmsDependencies) *FilmsHandler {
	return &FilmsHandler{deps: deps}
}

// HandleGetFilms handles GET /films?year_min=&year_max=&motif= requests.
func (h *FilmsHandler) HandleGetFilms(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_films"
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
	cards, err := h.deps.Filmography(r.Context(), sel)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, cards)
}
