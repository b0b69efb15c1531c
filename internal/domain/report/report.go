// Package report implements the interactive filter and the fixed set of
// aggregators that turn a normalized film set into result tables.
//
// Every function here is pure: the input slice is never mutated and every
// aggregator tolerates a zero-row input. Nothing in this package formats for
// display; the rendering layer owns presentation.
package report

import (
	"github.com/okian/reel/internal/domain/model"
	"github.com/okian/reel/internal/domain/types"
)

// Default aggregation limits. The top-N tables and the duration histogram
// width mirror the report the product ships.
const (
	defaultTopN    = 5
	defaultMaxBins = 30
)

// listSep separates values inside the Genre and Cast fields.
const listSep = ", "

// Options bundles the tunable aggregation limits.
type Options struct {
	topN    int
	maxBins int
}

// Option applies a configuration option to a computation pass.
type Option func(*Options)

// WithTopN caps the top-N tables (genres, top rated, directors, co-stars).
func WithTopN(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.topN = n
		}
	}
}

// WithMaxBins caps the number of duration histogram bins.
func WithMaxBins(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxBins = n
		}
	}
}

func newOptions(opts ...Option) Options {
	o := Options{topN: defaultTopN, maxBins: defaultMaxBins}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Filter returns the subset of films matching the selection. Pure; the input
// is not mutated and applying the same selection twice returns an equal set.
func Filter(films []model.Film, sel model.Selection) []model.Film {
	out := make([]model.Film, 0, len(films))
	for _, f := range films {
		if sel.Matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// Compute runs every aggregator over the films matching the selection and
// bundles the result tables. It is a pure function of its inputs; each call
// recomputes everything from scratch.
func Compute(films []model.Film, subject string, sel model.Selection, opts ...Option) types.Report {
	o := newOptions(opts...)
	sub := Filter(films, sel)

	return types.Report{
		Total:         len(sub),
		Yearly:        Yearly(sub),
		Genres:        TopGenres(sub, o.topN),
		Ratings:       RatingDist(sub),
		Durations:     DurationHist(sub, o.maxBins),
		RatingStats:   RatingStats(sub),
		DurationStats: DurationStats(sub),
		TopRated:      TopRated(sub, o.topN),
		Directors:     TopDirectors(sub, o.topN),
		CoStars:       TopCoStars(sub, subject, o.topN),
	}
}

// Filmography returns the filtered films as poster-grid cells, minus any
// excluded titles. Dataset order is preserved.
func Filmography(films []model.Film, sel model.Selection, excluded []string) []types.Card {
	skip := make(map[string]struct{}, len(excluded))
	for _, t := range excluded {
		skip[t] = struct{}{}
	}

	sub := Filter(films, sel)
	cards := make([]types.Card, 0, len(sub))
	for _, f := range sub {
		if _, ok := skip[f.Title]; ok {
			continue
		}
		cards = append(cards, card(f))
	}
	return cards
}

func card(f model.Film) types.Card {
	return types.Card{
		Title:  f.Title,
		Year:   f.YearInt,
		Rating: f.Rating,
		Poster: f.Poster,
		Genre:  f.Genre,
	}
}
