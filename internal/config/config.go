// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors are wrapped via this package's sentinels.
package config

import "github.com/okian/reel/internal/domain/normalize"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at the source CSV file.
	DatasetPath string `koanf:"dataset_path"`

	// Subject is the actor the whole report is scoped to.
	Subject string `koanf:"subject"`

	// PlaceholderPoster substitutes for missing poster URLs.
	PlaceholderPoster string `koanf:"placeholder_poster"`

	// Motifs lists the candidate motif labels in precedence order.
	Motifs []string `koanf:"motifs"`

	// TopN caps the top-N result tables.
	TopN int `koanf:"top_n"`

	// DurationMaxBins caps the duration histogram bin count.
	DurationMaxBins int `koanf:"duration_max_bins"`

	// ExcludedTitles are dropped from the filmography grid only.
	ExcludedTitles []string `koanf:"excluded_titles"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		DatasetPath:       "imdb-movies-dataset.csv",
		Subject:           "Nicolas Cage",
		PlaceholderPoster: normalize.DefaultPosterURL,
		Motifs:            normalize.DefaultMotifs(),
		TopN:              5,
		DurationMaxBins:   30,
	}
}
