package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/leetkeeper/internal/client/storage"
)

// runStatus показывает состояние локального кеша без обращения к фиду
func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Local Cache Status ===")
	c.io.Println()
	c.io.Printf("Database: %s\n", c.dbPath)

	lastRefresh, err := c.dataService.LastRefresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last refresh: %w", err)
	}

	if lastRefresh.IsZero() {
		c.io.Println("Last refresh: never")
	} else {
		c.io.Printf("Last refresh: %s (%s ago)\n",
			lastRefresh.Format(time.RFC3339),
			time.Since(lastRefresh).Round(time.Second))
	}

	// Статус не должен провоцировать сетевой fetch, поэтому читаем кеш напрямую
	problems, err := c.dataService.Cached(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) || errors.Is(err, storage.ErrSnapshotInvalid) {
			c.io.Println("Cached problems: none")
			c.io.Println()
			c.io.Println("Run 'leetkeeper refresh' to download the dataset.")
			return nil
		}
		return fmt.Errorf("failed to read cache: %w", err)
	}

	c.io.Printf("Cached problems: %d\n", len(problems))
	return nil
}
