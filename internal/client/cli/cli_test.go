package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/leetkeeper/internal/client/api"
	"github.com/iudanet/leetkeeper/internal/client/data"
	"github.com/iudanet/leetkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/leetkeeper/pkg/api"
)

// recorderIO пишет весь вывод команд в буфер; input отдаёт заранее заданные строки
type recorderIO struct {
	out    bytes.Buffer
	inputs []string
}

func (r *recorderIO) Println(a ...any) {
	fmt.Fprintln(&r.out, a...)
}

func (r *recorderIO) Printf(format string, a ...any) {
	fmt.Fprintf(&r.out, format, a...)
}

func (r *recorderIO) ReadInput(prompt string) (string, error) {
	if len(r.inputs) == 0 {
		return "", fmt.Errorf("no scripted input")
	}
	input := r.inputs[0]
	r.inputs = r.inputs[1:]
	return input, nil
}

func (r *recorderIO) Write(p []byte) (int, error) {
	return r.out.Write(p)
}

func (r *recorderIO) IsTerminal() bool { return false }

// newTestCli собирает CLI над реальным BoltDB и httptest-фидом
func newTestCli(t *testing.T, feed []api.RawProblem) (*Cli, *recorderIO) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(feed))
	}))
	t.Cleanup(server.Close)

	dbPath := filepath.Join(t.TempDir(), "cli_test.db")
	store, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	logger := slog.New(slog.DiscardHandler)
	svc := data.NewService(httpClient.NewClient(server.URL, logger), store, store, logger)

	rec := &recorderIO{}
	return New(svc, rec, dbPath), rec
}

func cliFeed() []api.RawProblem {
	return []api.RawProblem{
		{ID: 1, Title: "Two Sum", TitleSlug: "two-sum", Rating: 1200, ProblemIndex: "Q1"},
		{ID: 2, Title: "Add Two Numbers", TitleSlug: "add-two-numbers", Rating: 1500, ProblemIndex: "Q2"},
		{ID: 3, Title: "Hard Graph", TitleSlug: "hard-graph", Rating: 2400, ProblemIndex: "Q4"},
	}
}

func TestRunRefresh(t *testing.T) {
	ctx := context.Background()
	c, rec := newTestCli(t, cliFeed())

	require.NoError(t, c.Run(ctx, "refresh", nil))

	out := rec.out.String()
	assert.Contains(t, out, "3 problem(s)")
	assert.Contains(t, out, "new problems:     3")
}

func TestRunList_FiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	c, rec := newTestCli(t, cliFeed())

	require.NoError(t, c.Run(ctx, "list", []string{"-min-rating", "1300", "-sort", "rating", "-desc"}))

	out := rec.out.String()
	assert.Contains(t, out, "Hard Graph")
	assert.Contains(t, out, "Add Two Numbers")
	assert.NotContains(t, out, "Two Sum")
	assert.Contains(t, out, "Page 1/1, 2 problem(s) matched")

	// Убывание по рейтингу: Hard Graph выше Add Two Numbers
	assert.Less(t, strings.Index(out, "Hard Graph"), strings.Index(out, "Add Two Numbers"))
}

func TestRunList_NoMatches(t *testing.T) {
	ctx := context.Background()
	c, rec := newTestCli(t, cliFeed())

	require.NoError(t, c.Run(ctx, "list", []string{"-query", "nothing-matches-this"}))
	assert.Contains(t, rec.out.String(), "No problems match")
}

func TestRunSolveAndStats(t *testing.T) {
	ctx := context.Background()
	c, rec := newTestCli(t, cliFeed())

	require.NoError(t, c.Run(ctx, "solve", []string{"1"}))
	require.NoError(t, c.Run(ctx, "star", []string{"3"}))
	require.NoError(t, c.Run(ctx, "stats", nil))

	out := rec.out.String()
	assert.Contains(t, out, "Problem 1 marked as solved")
	assert.Contains(t, out, "Total problems: 3")
	assert.Contains(t, out, "Solved:         1 (33.3%)")
	assert.Contains(t, out, "Starred:        1")
}

func TestRunNote_InteractivePrompt(t *testing.T) {
	ctx := context.Background()
	c, rec := newTestCli(t, cliFeed())
	rec.inputs = []string{"two pointers"}

	require.NoError(t, c.Run(ctx, "note", []string{"2"}))
	require.NoError(t, c.Run(ctx, "get", []string{"2"}))

	out := rec.out.String()
	assert.Contains(t, out, "two pointers")
	assert.Contains(t, out, "https://leetcode.com/problems/add-two-numbers/")
}

func TestRunGet_NotFound(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCli(t, cliFeed())

	err := c.Run(ctx, "get", []string{"999"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRun_UnknownCommand(t *testing.T) {
	ctx := context.Background()
	c, rec := newTestCli(t, cliFeed())

	err := c.Run(ctx, "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, rec.out.String(), "Usage:")
}

func TestRunStatus_EmptyCache(t *testing.T) {
	ctx := context.Background()
	c, rec := newTestCli(t, cliFeed())

	require.NoError(t, c.Run(ctx, "status", nil))

	out := rec.out.String()
	assert.Contains(t, out, "Last refresh: never")
	assert.Contains(t, out, "Cached problems: none")
}

func TestRunStatus_AfterRefresh(t *testing.T) {
	ctx := context.Background()
	c, rec := newTestCli(t, cliFeed())

	require.NoError(t, c.Run(ctx, "refresh", nil))
	rec.out.Reset()

	require.NoError(t, c.Run(ctx, "status", nil))

	out := rec.out.String()
	assert.Contains(t, out, "Cached problems: 3")
	assert.NotContains(t, out, "never")
}
