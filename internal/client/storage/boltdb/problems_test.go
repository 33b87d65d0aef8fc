package boltdb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/leetkeeper/internal/client/storage"
	"github.com/iudanet/leetkeeper/internal/models"
)

// createTestProblems формирует небольшой список задач с пользовательским прогрессом
func createTestProblems() []models.Problem {
	return []models.Problem{
		{
			ID:              1,
			Title:           "Two Sum",
			TitleSlug:       "two-sum",
			Rating:          1200,
			ContestID:       "weekly-contest-1",
			ProblemIndex:    "Q1",
			Difficulty:      models.DifficultyEasy,
			Solved:          true,
			Starred:         false,
			Notes:           "hash map",
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(n)",
		},
		{
			ID:         2,
			Title:      "Median of Two Sorted Arrays",
			TitleSlug:  "median-of-two-sorted-arrays",
			Rating:     2100,
			Difficulty: models.DifficultyHard,
		},
	}
}

func TestSaveLoadSnapshot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	problems := createTestProblems()

	// Сохраняем снапшот
	err := store.SaveSnapshot(ctx, problems)
	require.NoError(t, err)

	// Загружаем обратно: round-trip должен вернуть список поле-в-поле
	got, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, problems, got)
}

func TestLoadSnapshot_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestSaveSnapshot_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveSnapshot(ctx, createTestProblems()))

	// Повторное сохранение полностью заменяет значение целиком
	replacement := []models.Problem{{ID: 42, Title: "Replacement"}}
	require.NoError(t, store.SaveSnapshot(ctx, replacement))

	got, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestLoadSnapshot_VersionMismatch(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Пишем снапшот другой версии напрямую, минуя SaveSnapshot
	stale := storage.Snapshot{
		Version: storage.SnapshotVersion + 1,
		Data:    createTestProblems(),
	}
	data, err := json.Marshal(stale)
	require.NoError(t, err)

	err = store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketProblems).Put([]byte(keySnapshot), data)
	})
	require.NoError(t, err)

	// Несовпадение версии эквивалентно отсутствию кеша
	_, err = store.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrSnapshotInvalid)
}

func TestLoadSnapshot_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketProblems).Put([]byte(keySnapshot), []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = store.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrSnapshotInvalid)
}
