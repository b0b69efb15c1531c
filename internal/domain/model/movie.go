// Package model contains domain records passed between layers.
package model

import "math"

// MovieRecord is one raw row of the source dataset. Numeric fields use NaN
// to represent a missing cell so that "missing" survives until normalization
// decides what to do with it.
type MovieRecord struct {
	Title    string
	Year     float64 // release year; NaN when the cell is missing or unparseable
	Genre    string  // comma-separated genre labels, e.g. "Action, Thriller"
	Rating   float64
	Duration float64 // runtime in minutes
	Director string
	Cast     string // comma-separated actor names
	Poster   string // poster URL; may be blank
}

// HasYear reports whether the record carries a usable release year.
func (m MovieRecord) HasYear() bool {
	return !math.IsNaN(m.Year)
}

// HasRating reports whether the record carries a usable rating.
func (m MovieRecord) HasRating() bool {
	return !math.IsNaN(m.Rating)
}

// HasDuration reports whether the record carries a usable runtime.
func (m MovieRecord) HasDuration() bool {
	return !math.IsNaN(m.Duration)
}

// Film is a MovieRecord that passed normalization. YearInt is always set,
// Poster is never blank, and Motif is exactly one label from the configured
// candidate list or "Other".
type Film struct {
	MovieRecord

	YearInt int
	Motif   string
}

// MotifAll is the sentinel selection value meaning "no motif restriction".
const MotifAll = "All"

// Selection is the user-chosen filter applied to the normalized set.
type Selection struct {
	YearMin int
	YearMax int
	Motif   string // a motif label, or MotifAll
}

// Matches reports whether f falls inside the selection. Year bounds are
// inclusive; the motif must match exactly unless it is MotifAll.
func (s Selection) Matches(f Film) bool {
	if f.YearInt < s.YearMin || f.YearInt > s.YearMax {
		return false
	}
	if s.Motif != MotifAll && f.Motif != s.Motif {
		return false
	}
	return true
}
