package storage

import "context"

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastRefresh saves the timestamp of the last successful dataset refresh
	SaveLastRefresh(ctx context.Context, timestamp int64) error

	// GetLastRefresh retrieves the timestamp of the last successful refresh
	// Returns 0 if no refresh has been performed yet
	GetLastRefresh(ctx context.Context) (int64, error)
}
