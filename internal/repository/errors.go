// Package repository defines sentinel errors shared by the storage layer.
// Handlers use them to pick status codes: a read that fails with
// ErrNoStorage degrades to an empty result, while a write surfaces it as a
// storage-configuration error.
package repository

import "errors"

// ErrNoStorage is returned when no database is configured or reachable.
var ErrNoStorage = errors.New("storage not configured")

// ErrMissingField is returned by Add when a required entry field is empty.
// Handlers should translate this into an HTTP 400 response.
var ErrMissingField = errors.New("catalog_id and title are required")
