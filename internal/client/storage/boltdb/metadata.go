package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastRefreshTimestamp = "last_refresh_timestamp"
)

// SaveLastRefresh saves the timestamp of the last successful dataset refresh
func (s *Storage) SaveLastRefresh(ctx context.Context, timestamp int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		// Сохраняем timestamp
		if err := bucket.Put([]byte(keyLastRefreshTimestamp), timestampBytes); err != nil {
			return fmt.Errorf("failed to save last refresh timestamp: %w", err)
		}

		return nil
	})
}

// GetLastRefresh retrieves the timestamp of the last successful refresh
// Returns 0 if no refresh has been performed yet
func (s *Storage) GetLastRefresh(ctx context.Context) (int64, error) {
	var timestamp int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Получаем timestamp
		timestampBytes := bucket.Get([]byte(keyLastRefreshTimestamp))
		if timestampBytes == nil {
			// Если timestamp не найден, возвращаем 0 (обновлений еще не было)
			timestamp = 0
			return nil
		}

		// Конвертируем bytes в int64
		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last refresh timestamp: %w", err)
	}

	return timestamp, nil
}
