package storage

import (
	"context"

	"github.com/iudanet/leetkeeper/internal/models"
)

// SnapshotVersion — текущая версия формата локального снапшота.
// Миграций по полям нет: несовпадение версии при чтении эквивалентно
// отсутствию кеша, список целиком пересобирается из фида.
const SnapshotVersion = 1

// Snapshot представляет версионированный слепок полного списка задач,
// сохраняемый в локальное хранилище как единое значение.
type Snapshot struct {
	Version int              `json:"version"`
	Data    []models.Problem `json:"data"`
}

// ProblemsStorage defines interface for the local problems snapshot
type ProblemsStorage interface {
	// SaveSnapshot заменяет сохранённый снапшот целиком.
	// Инкрементальной записи нет: каждая правка переписывает всё значение,
	// атомарность обеспечивает само хранилище.
	SaveSnapshot(ctx context.Context, problems []models.Problem) error

	// LoadSnapshot возвращает сохранённый список задач.
	// Возвращает ErrSnapshotNotFound если снапшота нет и ErrSnapshotInvalid
	// если он не декодируется или записан другой версией формата.
	LoadSnapshot(ctx context.Context) ([]models.Problem, error)
}
