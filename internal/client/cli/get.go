package cli

import (
	"context"
	"fmt"
	"text/template"
)

// runGet показывает одну задачу целиком, включая аннотации и ссылку
func (c *Cli) runGet(ctx context.Context, args []string) error {
	id, err := parseProblemID(args)
	if err != nil {
		return err
	}

	problems, err := c.dataService.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open problems: %w", err)
	}

	problem, ok := findProblem(problems, id)
	if !ok {
		return fmt.Errorf("problem %d not found", id)
	}

	tmpl, err := template.New("problem").Parse(problemTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	if err := tmpl.Execute(c.io, problem); err != nil {
		return fmt.Errorf("failed to render problem: %w", err)
	}

	return nil
}
