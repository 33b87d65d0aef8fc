package storage

import "errors"

// Common client storage errors
var (
	// ErrSnapshotNotFound indicates that no problems snapshot has been saved yet
	ErrSnapshotNotFound = errors.New("problems snapshot not found")

	// ErrSnapshotInvalid indicates that the stored snapshot cannot be used:
	// the blob does not decode or was written by a different format version.
	// Callers treat it exactly like ErrSnapshotNotFound — full refetch-and-merge.
	ErrSnapshotInvalid = errors.New("problems snapshot invalid")
)
