package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/leetkeeper/internal/client/storage"
	"github.com/iudanet/leetkeeper/internal/models"
)

const keySnapshot = "snapshot"

// SaveSnapshot заменяет сохранённый снапшот целиком.
// Значение пишется одним куском, атомарность даёт транзакция bbolt.
func (s *Storage) SaveSnapshot(ctx context.Context, problems []models.Problem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProblems)
		if bucket == nil {
			return fmt.Errorf("problems bucket not found")
		}

		// Оборачиваем список в версионированный снапшот
		snapshot := storage.Snapshot{
			Version: storage.SnapshotVersion,
			Data:    problems,
		}

		// Сериализуем снапшот в JSON
		data, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		// Сохраняем под фиксированным ключом, полностью заменяя старое значение
		if err := bucket.Put([]byte(keySnapshot), data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})
}

// LoadSnapshot возвращает сохранённый список задач.
// Отсутствие снапшота, нечитаемый blob и несовпадение версии формата
// различаются только сентинельной ошибкой; для вызывающего все три случая —
// "кеша нет".
func (s *Storage) LoadSnapshot(ctx context.Context) ([]models.Problem, error) {
	var problems []models.Problem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProblems)
		if bucket == nil {
			return fmt.Errorf("problems bucket not found")
		}

		data := bucket.Get([]byte(keySnapshot))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		// Десериализуем
		var snapshot storage.Snapshot
		if err := json.Unmarshal(data, &snapshot); err != nil {
			return fmt.Errorf("%w: undecodable blob", storage.ErrSnapshotInvalid)
		}

		// Версионный гейт: другой формат целиком инвалидирует кеш
		if snapshot.Version != storage.SnapshotVersion {
			return fmt.Errorf("%w: version %d, want %d",
				storage.ErrSnapshotInvalid, snapshot.Version, storage.SnapshotVersion)
		}

		problems = snapshot.Data
		return nil
	})

	if err != nil {
		return nil, err
	}

	return problems, nil
}
