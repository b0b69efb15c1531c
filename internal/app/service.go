// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/okian/reel/internal/adapters/repository"
	"github.com/okian/reel/internal/domain/model"
	"github.com/okian/reel/internal/domain/normalize"
	"github.com/okian/reel/internal/domain/report"
	"github.com/okian/reel/internal/domain/types"
	"github.com/okian/reel/pkg/logger"
	"github.com/okian/reel/pkg/metrics"
)

// Service wires the dataset store and the report pipeline together and
// implements the API dependencies.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	normalizer *normalize.Normalizer

	// Configuration
	datasetPath       string
	subject           string
	placeholderPoster string
	motifs            []string
	topN              int
	maxBins           int
	excludedTitles    []string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		datasetPath:       "imdb-movies-dataset.csv",
		subject:           "Nicolas Cage",
		placeholderPoster: normalize.DefaultPosterURL,
		motifs:            normalize.DefaultMotifs(),
		topN:              5,
		maxBins:           30,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components and performs the initial dataset
// load. A malformed dataset fails here, before the HTTP server binds.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting report service...",
		logger.String("subject", s.subject),
		logger.String("dataset", s.datasetPath),
	)

	s.normalizer = normalize.New(s.subject,
		normalize.WithPlaceholderPoster(s.placeholderPoster),
		normalize.WithMotifs(s.motifs),
	)
	if s.store == nil {
		s.store = repository.NewCSVStore(s.datasetPath, s.normalizer,
			repository.WithLogger(s.logger),
		)
	}

	if err := s.store.Load(ctx); err != nil {
		return err
	}

	s.started = true
	s.logger.Info(ctx, "report service started",
		logger.Int("films", s.store.Count(ctx)),
	)
	return nil
}

// Stop shuts the service down. The store holds no external resources beyond
// its in-memory cache, so this only flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "report service stopped")
}

// Report recomputes every result table for the given selection. Each call is
// a full pass over the filtered subset; nothing is retained across calls.
func (s *Service) Report(ctx context.Context, sel model.Selection) (types.Report, error) {
	films, err := s.store.Films(ctx)
	if err != nil {
		return types.Report{}, err
	}

	start := time.Now()
	rep := report.Compute(films, s.subject, sel,
		report.WithTopN(s.topN),
		report.WithMaxBins(s.maxBins),
	)
	metrics.RecordReport(float64(time.Since(start).Milliseconds()), rep.Total)

	s.logger.Debug(ctx, "report computed",
		logger.Int("films", len(films)),
		logger.Int("filtered", rep.Total),
	)
	return rep, nil
}

// Filmography returns the filtered films as poster-grid cells, minus the
// configured excluded titles.
func (s *Service) Filmography(ctx context.Context, sel model.Selection) ([]types.Card, error) {
	films, err := s.store.Films(ctx)
	if err != nil {
		return nil, err
	}
	return report.Filmography(films, sel, s.excludedTitles), nil
}

// Bounds returns the observed year extent and the motif labels present in
// the normalized set, for the UI's filter controls.
func (s *Service) Bounds(ctx context.Context) (types.Bounds, error) {
	films, err := s.store.Films(ctx)
	if err != nil {
		return types.Bounds{}, err
	}

	b := types.Bounds{}
	seen := make(map[string]struct{})
	for i, f := range films {
		if i == 0 || f.YearInt < b.YearMin {
			b.YearMin = f.YearInt
		}
		if i == 0 || f.YearInt > b.YearMax {
			b.YearMax = f.YearInt
		}
		seen[f.Motif] = struct{}{}
	}
	b.Motifs = make([]string, 0, len(seen))
	for m := range seen {
		b.Motifs = append(b.Motifs, m)
	}
	sort.Strings(b.Motifs)
	return b, nil
}

// Reload re-reads the dataset and swaps the cache. This is the explicit
// cache invalidation hook; nothing else ever invalidates the cache.
func (s *Service) Reload(ctx context.Context) error {
	s.logger.Info(ctx, "reloading dataset", logger.String("dataset", s.datasetPath))
	return s.store.Reload(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
		"subject": s.subject,
		"dataset": s.datasetPath,
		"topN":    s.topN,
		"maxBins": s.maxBins,
	}

	if s.started {
		stats["films"] = s.store.Count(ctx)
		if cs, ok := s.store.(*repository.CSVStore); ok {
			stats["rows"] = cs.RowCount()
			stats["loadedAt"] = cs.LoadedAt()
		}
	}
	return stats
}
