// Package normalize scopes the raw dataset to one subject and derives the
// per-row attributes the aggregators depend on.
package normalize

import (
	"strings"

	"github.com/okian/reel/internal/domain/model"
)

// DefaultPosterURL substitutes for a missing or blank poster cell.
const DefaultPosterURL = "https://via.placeholder.com/300x450?text=No+Image"

// MotifOther is assigned when no candidate label matches the genre string.
const MotifOther = "Other"

// DefaultMotifs lists the candidate motif labels in precedence order. The
// order is load-bearing: a film tagged "Drama, Action" is classified
// "Action" because Action precedes Drama here, regardless of how the record
// orders its own genres. This first-match scan is intentional behavior
// inherited from the product, not a defect.
func DefaultMotifs() []string {
	return []string{
		"Action",
		"Adventure",
		"Comedy",
		"Drama",
		"Thriller",
		"Crime",
		"Fantasy",
		"Family",
	}
}

// Normalizer turns raw rows into subject-scoped, normalized films.
type Normalizer struct {
	subject string
	poster  string
	motifs  []string
}

// New constructs a Normalizer for the given subject with default
// placeholder poster and motif candidates.
func New(subject string, opts ...Option) *Normalizer {
	n := &Normalizer{
		subject: subject,
		poster:  DefaultPosterURL,
		motifs:  DefaultMotifs(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Subject returns the subject name the normalizer is scoped to.
func (n *Normalizer) Subject() string {
	return n.subject
}

// Motifs returns a copy of the candidate label list in precedence order.
func (n *Normalizer) Motifs() []string {
	out := make([]string, len(n.motifs))
	copy(out, n.motifs)
	return out
}

// BySubject keeps rows whose Cast field contains the subject name as a
// literal, case-sensitive substring. Rows with an empty Cast never match.
func (n *Normalizer) BySubject(rows []model.MovieRecord) []model.MovieRecord {
	out := make([]model.MovieRecord, 0, len(rows))
	for _, r := range rows {
		if r.Cast == "" || n.subject == "" {
			continue
		}
		if strings.Contains(r.Cast, n.subject) {
			out = append(out, r)
		}
	}
	return out
}

// Normalize drops rows without a parseable year, narrows the year to an
// integer (truncation toward zero), defaults blank posters, and derives the
// motif label. Input order is preserved.
func (n *Normalizer) Normalize(rows []model.MovieRecord) []model.Film {
	films := make([]model.Film, 0, len(rows))
	for _, r := range rows {
		if !r.HasYear() {
			continue
		}
		f := model.Film{
			MovieRecord: r,
			YearInt:     int(r.Year),
			Motif:       n.Motif(r.Genre),
		}
		if strings.TrimSpace(f.Poster) == "" {
			f.Poster = n.poster
		}
		films = append(films, f)
	}
	return films
}

// Films runs the full subject-filter-then-normalize pass.
func (n *Normalizer) Films(rows []model.MovieRecord) []model.Film {
	return n.Normalize(n.BySubject(rows))
}

// Motif returns the first candidate label that appears as a substring of the
// genre string, scanning candidates in precedence order, or MotifOther when
// none match.
func (n *Normalizer) Motif(genre string) string {
	for _, label := range n.motifs {
		if strings.Contains(genre, label) {
			return label
		}
	}
	return MotifOther
}
