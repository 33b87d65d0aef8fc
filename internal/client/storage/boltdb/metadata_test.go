package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLastRefresh_Default(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Пока обновлений не было, возвращается 0
	ts, err := store.GetLastRefresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)
}

func TestSaveGetLastRefresh(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	now := time.Now().Unix()
	require.NoError(t, store.SaveLastRefresh(ctx, now))

	ts, err := store.GetLastRefresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, ts)

	// Повторная запись заменяет значение
	require.NoError(t, store.SaveLastRefresh(ctx, now+60))

	ts, err = store.GetLastRefresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, now+60, ts)
}
