// Package repository defines the dataset store interface and errors.
package repository

import "github.com/okian/reel/pkg/logger"

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithLogger sets the logger used for load reporting.
func WithLogger(log logger.Logger) Option {
	return func(s *CSVStore) {
		if log != nil {
			s.log = log
		}
	}
}
