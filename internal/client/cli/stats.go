package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/leetkeeper/internal/client/view"
)

// runStats печатает агрегаты по полному списку
func (c *Cli) runStats(ctx context.Context) error {
	problems, err := c.dataService.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open problems: %w", err)
	}

	stats := view.Aggregate(problems)

	c.io.Println("=== Progress ===")
	c.io.Println()
	c.io.Printf("Total problems: %d\n", stats.Total)
	c.io.Printf("Solved:         %d (%s%%)\n", stats.Solved, stats.Percent)
	c.io.Printf("Starred:        %d\n", stats.Starred)

	return nil
}
