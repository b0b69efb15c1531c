package report

import (
	"sort"
	"strings"

	"github.com/okian/reel/internal/domain/model"
	"github.com/okian/reel/internal/domain/types"
)

// counter accumulates occurrence counts while remembering the order in which
// keys were first seen, so top-N ties break deterministically by first
// encounter in the flattened sequence.
type counter struct {
	counts map[string]int
	first  map[string]int
	next   int
}

func newCounter() *counter {
	return &counter{
		counts: make(map[string]int),
		first:  make(map[string]int),
	}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.first[key] = c.next
		c.next++
	}
	c.counts[key]++
}

// top returns up to n keys ordered by count descending, ties by first
// encounter.
func (c *counter) top(n int) []string {
	keys := make([]string, 0, len(c.counts))
	for k := range c.counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if c.counts[keys[i]] != c.counts[keys[j]] {
			return c.counts[keys[i]] > c.counts[keys[j]]
		}
		return c.first[keys[i]] < c.first[keys[j]]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// Yearly counts films per release year. Output order is unspecified; the
// rendering layer sorts for display.
func Yearly(films []model.Film) []types.YearCount {
	counts := make(map[int]int)
	for _, f := range films {
		counts[f.YearInt]++
	}
	out := make([]types.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, types.YearCount{Year: year, Count: n})
	}
	return out
}

// TopGenres explodes each film's genre list, flattens the labels across the
// subset, and returns the n most frequent.
func TopGenres(films []model.Film, n int) []types.GenreCount {
	c := newCounter()
	for _, f := range films {
		if f.Genre == "" {
			continue
		}
		for _, g := range strings.Split(f.Genre, listSep) {
			c.add(g)
		}
	}
	out := make([]types.GenreCount, 0, n)
	for _, g := range c.top(n) {
		out = append(out, types.GenreCount{Genre: g, Count: c.counts[g]})
	}
	return out
}

// RatingDist counts films per exact rating value. Films without a rating are
// left out. Output is sorted by rating ascending for determinism.
func RatingDist(films []model.Film) []types.RatingCount {
	counts := make(map[float64]int)
	for _, f := range films {
		if !f.HasRating() {
			continue
		}
		counts[f.Rating]++
	}
	out := make([]types.RatingCount, 0, len(counts))
	for r, n := range counts {
		out = append(out, types.RatingCount{Rating: r, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	return out
}

// DurationHist buckets runtimes into at most maxBins equal-width bins
// spanning the observed min and max. An empty subset yields an empty bin
// set. A subset with a single distinct runtime yields one bin holding
// everything.
func DurationHist(films []model.Film, maxBins int) []types.DurationBin {
	values := make([]float64, 0, len(films))
	for _, f := range films {
		if f.HasDuration() {
			values = append(values, f.Duration)
		}
	}
	if len(values) == 0 {
		return []types.DurationBin{}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi || maxBins == 1 {
		return []types.DurationBin{{Low: lo, High: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(maxBins)
	bins := make([]types.DurationBin, maxBins)
	for i := range bins {
		bins[i].Low = lo + float64(i)*width
		bins[i].High = lo + float64(i+1)*width
	}
	bins[maxBins-1].High = hi
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= maxBins {
			idx = maxBins - 1 // the max value lands on the closing edge
		}
		bins[idx].Count++
	}
	return bins
}

// RatingStats summarizes ratings over the subset. Defined is false when no
// film carried a rating.
func RatingStats(films []model.Film) types.Stats {
	values := make([]float64, 0, len(films))
	for _, f := range films {
		if f.HasRating() {
			values = append(values, f.Rating)
		}
	}
	return summarize(values)
}

// DurationStats summarizes runtimes over the subset. Defined is false when
// no film carried a runtime.
func DurationStats(films []model.Film) types.Stats {
	values := make([]float64, 0, len(films))
	for _, f := range films {
		if f.HasDuration() {
			values = append(values, f.Duration)
		}
	}
	return summarize(values)
}

// summarize computes mean, min, and max. An empty input is reported as
// undefined rather than coerced to zeros.
func summarize(values []float64) types.Stats {
	if len(values) == 0 {
		return types.Stats{}
	}
	s := types.Stats{Min: values[0], Max: values[0], Defined: true}
	sum := 0.0
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(values))
	return s
}

// TopRated selects the n highest-rated films. The sort is stable, so ties
// keep their original dataset order. Films without a rating never place.
func TopRated(films []model.Film, n int) []types.Card {
	rated := make([]model.Film, 0, len(films))
	for _, f := range films {
		if f.HasRating() {
			rated = append(rated, f)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool { return rated[i].Rating > rated[j].Rating })
	if len(rated) > n {
		rated = rated[:n]
	}
	out := make([]types.Card, 0, len(rated))
	for _, f := range rated {
		out = append(out, card(f))
	}
	return out
}

// TopDirectors counts films per director and returns the n most frequent.
// Records with a missing director are excluded from this table only.
func TopDirectors(films []model.Film, n int) []types.DirectorCount {
	c := newCounter()
	for _, f := range films {
		if f.Director == "" {
			continue
		}
		c.add(f.Director)
	}
	out := make([]types.DirectorCount, 0, n)
	for _, d := range c.top(n) {
		out = append(out, types.DirectorCount{Director: d, Count: c.counts[d]})
	}
	return out
}

// TopCoStars explodes each film's cast, drops the subject's own name token,
// and returns the n most frequent collaborators.
func TopCoStars(films []model.Film, subject string, n int) []types.ActorCount {
	c := newCounter()
	for _, f := range films {
		if f.Cast == "" {
			continue
		}
		for _, name := range strings.Split(f.Cast, listSep) {
			if name == subject {
				continue
			}
			c.add(name)
		}
	}
	out := make([]types.ActorCount, 0, n)
	for _, a := range c.top(n) {
		out = append(out, types.ActorCount{Actor: a, Count: c.counts[a]})
	}
	return out
}
