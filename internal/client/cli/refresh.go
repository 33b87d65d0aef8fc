package cli

import (
	"context"
	"fmt"
)

// runRefresh скачивает датасет и сливает его с локальным прогрессом
func (c *Cli) runRefresh(ctx context.Context) error {
	c.io.Println("Refreshing problem dataset...")

	_, result, err := c.dataService.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	c.io.Printf("Dataset refreshed: %d problem(s)\n", result.Total)
	c.io.Printf("  carried progress: %d\n", result.Carried)
	c.io.Printf("  new problems:     %d\n", result.Fresh)
	if result.Dropped > 0 {
		c.io.Printf("  dropped upstream: %d (local progress for them is gone)\n", result.Dropped)
	}

	return nil
}
