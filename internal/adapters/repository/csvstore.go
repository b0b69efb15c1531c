package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/okian/reel/internal/domain/model"
	"github.com/okian/reel/internal/domain/normalize"
	"github.com/okian/reel/pkg/logger"
	"github.com/okian/reel/pkg/metrics"
)

// Column names the loader requires in the source file header.
const (
	colTitle    = "Title"
	colYear     = "Year"
	colGenre    = "Genre"
	colRating   = "Rating"
	colDuration = "Duration (min)"
	colDirector = "Director"
	colCast     = "Cast"
	colPoster   = "Poster"
)

func requiredColumns() []string {
	return []string{
		colTitle, colYear, colGenre, colRating,
		colDuration, colDirector, colCast, colPoster,
	}
}

// CSVStore reads the movie dataset from a CSV file and caches it for the
// process lifetime. Safe for concurrent readers; Reload swaps the cached
// slices under a write lock.
type CSVStore struct {
	mu         sync.RWMutex
	path       string
	normalizer *normalize.Normalizer
	log        logger.Logger

	rows     []model.MovieRecord
	films    []model.Film
	loaded   bool
	loadedAt time.Time
}

// NewCSVStore constructs a store for the given file path, scoped to the
// subject via its normalizer.
func NewCSVStore(path string, n *normalize.Normalizer, opts ...Option) *CSVStore {
	s := &CSVStore{
		path:       path,
		normalizer: n,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load implements Store.
func (s *CSVStore) Load(ctx context.Context) error {
	start := time.Now()

	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	rows, err := s.parse(f)
	if err != nil {
		return err
	}
	films := s.normalizer.Films(rows)

	s.mu.Lock()
	s.rows = rows
	s.films = films
	s.loaded = true
	s.loadedAt = time.Now()
	s.mu.Unlock()

	metrics.UpdateDatasetGauges(len(rows), len(films))
	metrics.RecordDatasetLoad(float64(time.Since(start).Milliseconds()))

	if s.log != nil {
		s.log.Info(ctx, "dataset loaded",
			logger.String("path", s.path),
			logger.Int("rows", len(rows)),
			logger.Int("films", len(films)),
		)
	}
	return nil
}

// Reload implements Store. It is the explicit cache invalidation hook; the
// pipeline itself never invalidates anything.
func (s *CSVStore) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Films implements Store. The returned slice is shared and must be treated
// as read-only by callers; the pipeline never mutates its input.
func (s *CSVStore) Films(_ context.Context) ([]model.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	return s.films, nil
}

// Count implements Store.
func (s *CSVStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.films)
}

// RowCount returns the number of raw rows read from the file.
func (s *CSVStore) RowCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// LoadedAt returns the time of the last successful load, zero before it.
func (s *CSVStore) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Path returns the configured dataset path.
func (s *CSVStore) Path() string {
	return s.path
}

// parse reads the whole CSV stream into raw records. The header row is
// matched against the required columns; rows narrower than a referenced
// column read as empty cells rather than erroring.
func (s *CSVStore) parse(r io.Reader) ([]model.MovieRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; cells are read by header index

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []model.MovieRecord
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		cell := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		rows = append(rows, model.MovieRecord{
			Title:    cell(colTitle),
			Year:     parseFloat(cell(colYear)),
			Genre:    cell(colGenre),
			Rating:   parseFloat(cell(colRating)),
			Duration: parseFloat(cell(colDuration)),
			Director: cell(colDirector),
			Cast:     cell(colCast),
			Poster:   cell(colPoster),
		})
	}
	return rows, nil
}

// headerIndex maps required column names to their positions. The first
// header cell is stripped of a UTF-8 BOM if present.
func headerIndex(header []string) (map[string]int, error) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	idx := make(map[string]int, len(requiredColumns()))
	for _, col := range requiredColumns() {
		i, ok := pos[col]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
		idx[col] = i
	}
	return idx, nil
}

// parseFloat turns a numeric cell into a float64, with NaN standing in for a
// blank or unparseable cell. Whether NaN drops the row is the normalizer's
// call, not the loader's.
func parseFloat(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
