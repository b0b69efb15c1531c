// Package datagen produces synthetic movie datasets for demos and tests.
package datagen

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/okian/reel/internal/domain/model"
)

// Pools the generator draws from. Deliberately small so collaborator counts
// repeat and the top-N tables have something to rank.
var (
	titleWords = []string{
		"Midnight", "Vendetta", "Paradise", "Renegade", "Silent", "Harbor",
		"Crimson", "Echo", "Fortune", "Outlaw", "Static", "Mirage",
	}
	genres = []string{
		"Action", "Adventure", "Comedy", "Drama", "Thriller", "Crime",
		"Fantasy", "Family", "Horror", "Romance", "Sci-Fi", "Western",
	}
	directors = []string{
		"Mara Ellison", "Victor Roane", "Priya Chandrasekhar", "Tomas Werner",
		"June Okafor", "Daniel Reyes",
	}
	actors = []string{
		"Lena Hartwell", "Marcus Bell", "Ingrid Solberg", "Theo Marchetti",
		"Rosa Delgado", "Avery Quinn", "Hana Ishikawa", "Clifford Ames",
	}
)

// Generator produces random MovieRecord rows around one subject actor.
type Generator struct {
	rng     *rand.Rand
	subject string
	count   int

	// Probability of a deliberately missing cell, per field.
	missingYear   float64
	missingPoster float64
}

// New constructs a Generator with default configuration.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng:           rand.New(rand.NewSource(1)), //nolint:gosec // synthetic data only
		subject:       "Nicolas Cage",
		count:         60,
		missingYear:   0.05,
		missingPoster: 0.15,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Rows generates the synthetic records. Every row casts the subject plus a
// few co-stars; a small fraction of rows get missing years or posters so
// that normalization has something to drop and default.
func (g *Generator) Rows() []model.MovieRecord {
	rows := make([]model.MovieRecord, 0, g.count)
	for i := 0; i < g.count; i++ {
		rows = append(rows, g.row(i))
	}
	return rows
}

func (g *Generator) row(i int) model.MovieRecord {
	title := fmt.Sprintf("%s %s", g.pick(titleWords), g.pick(titleWords))

	genreCount := 1 + g.rng.Intn(3)
	genre := ""
	for _, gi := range g.rng.Perm(len(genres))[:genreCount] {
		if genre != "" {
			genre += ", "
		}
		genre += genres[gi]
	}

	cast := g.subject
	for _, ai := range g.rng.Perm(len(actors))[:2+g.rng.Intn(3)] {
		cast += ", " + actors[ai]
	}

	r := model.MovieRecord{
		Title:    fmt.Sprintf("%s %d", title, i),
		Year:     float64(1985 + g.rng.Intn(40)),
		Genre:    genre,
		Rating:   float64(30+g.rng.Intn(66)) / 10.0,
		Duration: float64(80 + g.rng.Intn(100)),
		Director: g.pick(directors),
		Cast:     cast,
		Poster:   fmt.Sprintf("https://posters.example.com/%d.jpg", i),
	}
	if g.rng.Float64() < g.missingYear {
		r.Year = math.NaN()
	}
	if g.rng.Float64() < g.missingPoster {
		r.Poster = ""
	}
	return r
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g *Generator) reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // synthetic data only
}

// WriteCSV writes rows in the source dataset schema. Missing numeric cells
// are written as empty strings, matching how the loader reads them back.
func WriteCSV(w io.Writer, rows []model.MovieRecord) error {
	cw := csv.NewWriter(w)
	header := []string{
		"Title", "Year", "Genre", "Rating",
		"Duration (min)", "Director", "Cast", "Poster",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Title,
			numCell(r.Year, 0),
			r.Genre,
			numCell(r.Rating, 1),
			numCell(r.Duration, 0),
			r.Director,
			r.Cast,
			r.Poster,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func numCell(v float64, prec int) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
