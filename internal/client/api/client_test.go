package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestFetchProblems_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"ID": 1, "Title": "Two Sum", "TitleSlug": "two-sum", "Rating": 1200.5, "ContestID_en": "weekly-contest-1", "ProblemIndex": "Q1"},
			{"ID": 2, "Title": "No Rating", "TitleSlug": "no-rating"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	problems, err := client.FetchProblems(context.Background())
	require.NoError(t, err)
	require.Len(t, problems, 2)

	assert.Equal(t, 1, problems[0].ID)
	assert.Equal(t, "Two Sum", problems[0].Title)
	assert.InDelta(t, 1200.5, problems[0].Rating, 0.001)
	assert.Equal(t, "Q1", problems[0].ProblemIndex)

	// Отсутствующие поля фида остаются нулевыми, запись не отбрасывается
	assert.Equal(t, 2, problems[1].ID)
	assert.Zero(t, problems[1].Rating)
	assert.Empty(t, problems[1].ProblemIndex)
}

func TestFetchProblems_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Первые два запроса падают, третий отвечает
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"ID": 7, "Title": "Recovered", "TitleSlug": "recovered"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	problems, err := client.FetchProblems(context.Background())
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, 7, problems[0].ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchProblems_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	_, err := client.FetchProblems(context.Background())
	require.Error(t, err)
	// 4xx не ретраится
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchProblems_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	_, err := client.FetchProblems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
