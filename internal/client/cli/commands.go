package cli

import (
	"context"
	"fmt"
)

// Run выполняет одну неинтерактивную команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "refresh":
		return c.runRefresh(ctx)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "solve":
		return c.runSetSolved(ctx, args, true)
	case "unsolve":
		return c.runSetSolved(ctx, args, false)
	case "star":
		return c.runSetStarred(ctx, args, true)
	case "unstar":
		return c.runSetStarred(ctx, args, false)
	case "note":
		return c.runSetText(ctx, args, editNotes)
	case "tc":
		return c.runSetText(ctx, args, editTimeComplexity)
	case "sc":
		return c.runSetText(ctx, args, editSpaceComplexity)
	case "stats":
		return c.runStats(ctx)
	case "status":
		return c.runStatus(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
