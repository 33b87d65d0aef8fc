package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/leetkeeper/pkg/api"
)

// DefaultDatasetURL — публичный фид рейтингов задач.
const DefaultDatasetURL = "https://zerotrac.github.io/leetcode_problem_rating/data.json"

// ClientAPI определяет интерфейс клиента фида датасета
type ClientAPI interface {
	// FetchProblems скачивает полный датасет рейтингов
	FetchProblems(ctx context.Context) ([]api.RawProblem, error)
}

// Client представляет HTTP клиент для загрузки датасета рейтингов
type Client struct {
	httpClient *http.Client
	datasetURL string
	logger     *slog.Logger
}

// NewClient создает новый клиент фида
func NewClient(datasetURL string, logger *slog.Logger) *Client {
	return &Client{
		datasetURL: datasetURL,
		logger:     logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Ограничиваем количество редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// FetchProblems скачивает полный датасет. Инкрементальной загрузки у фида
// нет: либо весь список целиком, либо ошибка.
// Транзиентные сбои (сетевые ошибки, 5xx) ретраятся с экспоненциальным
// backoff; ошибки запроса (4xx) и нечитаемый JSON не ретраятся.
func (c *Client) FetchProblems(ctx context.Context) ([]api.RawProblem, error) {
	var problems []api.RawProblem

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		problems, err = c.fetchOnce(ctx)
		if err != nil {
			c.logger.Warn("dataset fetch attempt failed", "error", err)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch problems failed: %w", err)
	}

	return problems, nil
}

// fetchOnce выполняет один GET датасета
func (c *Client) fetchOnce(ctx context.Context) ([]api.RawProblem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.datasetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые ошибки считаем транзиентными
		return nil, retry.RetryableError(fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.RetryableError(fmt.Errorf("failed to read response body: %w", err))
	}

	// Проверяем статус код
	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("dataset request failed with status %d", resp.StatusCode)
		if resp.StatusCode >= 500 {
			return nil, retry.RetryableError(statusErr)
		}
		return nil, statusErr
	}

	// Декодируем успешный ответ
	var problems []api.RawProblem
	if err := json.Unmarshal(respBody, &problems); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	return problems, nil
}
