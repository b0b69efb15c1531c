// Package repository defines the dataset store interface and errors.
package repository

import (
	"context"

	"github.com/okian/reel/internal/domain/model"
)

// Store provides read access to the cached dataset. The dataset is loaded
// once per process and is read-only afterwards; Reload is the only mutation
// and swaps the cache atomically.
type Store interface {
	// Load reads the source file, verifies the schema, and caches both the
	// raw rows and the normalized subject-scoped films. A malformed file or
	// a missing required column fails here, before any pipeline call.
	Load(ctx context.Context) error

	// Reload re-reads the source file and swaps the cache.
	Reload(ctx context.Context) error

	// Films returns the normalized, subject-scoped film set.
	// Returns ErrNotLoaded before the first successful Load.
	Films(ctx context.Context) ([]model.Film, error)

	// Count returns the number of cached films, zero before Load.
	Count(ctx context.Context) int
}
