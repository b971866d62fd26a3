// Package util provides the helper functions behind the dhelpers commands.
package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrNotDirectory = errors.New("exists and is not a directory")
	ErrExpectedFile = errors.New("expected file, got directory")
	ErrEmptyPath    = errors.New("path is empty")

	// Decoding errors
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
