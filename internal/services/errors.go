package services

import "errors"

var (
	// ErrNotFound: no record for the id, or it belongs to another user.
	ErrNotFound = errors.New("file not found")

	// ErrNotFoundOnDisk: the record exists but its blob is missing from
	// storage. Surfaced distinctly so the anomaly is visible.
	ErrNotFoundOnDisk = errors.New("file not found in storage")
)
