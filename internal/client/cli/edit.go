package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/leetkeeper/internal/models"
)

// textField перечисляет редактируемые текстовые поля записи
type textField int

const (
	editNotes textField = iota
	editTimeComplexity
	editSpaceComplexity
)

// runSetSolved переключает флаг решённости
func (c *Cli) runSetSolved(ctx context.Context, args []string, solved bool) error {
	id, err := parseProblemID(args)
	if err != nil {
		return err
	}

	problems, err := c.dataService.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open problems: %w", err)
	}

	if _, err := c.dataService.SetSolved(ctx, problems, id, solved); err != nil {
		return fmt.Errorf("failed to update problem: %w", err)
	}

	if solved {
		c.io.Printf("Problem %d marked as solved\n", id)
	} else {
		c.io.Printf("Problem %d marked as unsolved\n", id)
	}
	return nil
}

// runSetStarred переключает звезду
func (c *Cli) runSetStarred(ctx context.Context, args []string, starred bool) error {
	id, err := parseProblemID(args)
	if err != nil {
		return err
	}

	problems, err := c.dataService.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open problems: %w", err)
	}

	if _, err := c.dataService.SetStarred(ctx, problems, id, starred); err != nil {
		return fmt.Errorf("failed to update problem: %w", err)
	}

	if starred {
		c.io.Printf("Problem %d starred\n", id)
	} else {
		c.io.Printf("Problem %d unstarred\n", id)
	}
	return nil
}

// runSetText правит одно из текстовых полей (note, tc, sc).
// Текст берётся из аргумента или запрашивается интерактивно;
// пустой текст очищает поле.
func (c *Cli) runSetText(ctx context.Context, args []string, field textField) error {
	id, err := parseProblemID(args)
	if err != nil {
		return err
	}

	problems, err := c.dataService.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open problems: %w", err)
	}

	var (
		prompt string
		apply  func(context.Context, []models.Problem, int, string) ([]models.Problem, error)
	)
	switch field {
	case editNotes:
		prompt = "Notes: "
		apply = c.dataService.SetNotes
	case editTimeComplexity:
		prompt = "Time complexity: "
		apply = c.dataService.SetTimeComplexity
	case editSpaceComplexity:
		prompt = "Space complexity: "
		apply = c.dataService.SetSpaceComplexity
	}

	text, err := c.readText(args[1:], prompt)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if _, err := apply(ctx, problems, id, text); err != nil {
		return fmt.Errorf("failed to update problem: %w", err)
	}

	c.io.Printf("Problem %d updated\n", id)
	return nil
}
