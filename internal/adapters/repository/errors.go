package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrNotLoaded     = errors.New("dataset not loaded")
	ErrMissingColumn = errors.New("required column missing")
	ErrEmptyFile     = errors.New("dataset file has no header row")
)
