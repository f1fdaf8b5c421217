package model

import "errors"

// Common errors used across the application
var (
	// Catalog errors
	ErrGameNotFound     = errors.New("game not found")
	ErrCatalogNotLoaded = errors.New("catalog not loaded")

	// Directory errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrDirectoryNotLoaded = errors.New("directory not loaded")

	// Remembered-session errors
	ErrNoRememberedAccount = errors.New("no remembered account")
)
