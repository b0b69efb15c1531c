package service

import (
	repository "github.com/okian/reel/internal/adapters/repository"
	"github.com/okian/reel/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithStore injects a dataset store, replacing the CSV-backed default.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDatasetPath sets the source CSV path.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.datasetPath = path
		}
	}
}

// WithSubject sets the actor the report is scoped to.
func WithSubject(subject string) Option {
	return func(s *Service) {
		if subject != "" {
			s.subject = subject
		}
	}
}

// WithPlaceholderPoster sets the URL substituted for blank posters.
func WithPlaceholderPoster(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.placeholderPoster = url
		}
	}
}

// WithMotifs sets the candidate motif labels in precedence order.
func WithMotifs(labels []string) Option {
	return func(s *Service) {
		if len(labels) > 0 {
			s.motifs = labels
		}
	}
}

// WithTopN caps the top-N result tables.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithMaxBins caps the duration histogram bin count.
func WithMaxBins(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBins = n
		}
	}
}

// WithExcludedTitles sets titles dropped from the filmography grid.
func WithExcludedTitles(titles []string) Option {
	return func(s *Service) {
		s.excludedTitles = titles
	}
}
