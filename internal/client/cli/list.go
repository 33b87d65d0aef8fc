package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/iudanet/leetkeeper/internal/client/view"
	"github.com/iudanet/leetkeeper/internal/models"
)

// runList печатает одну страницу отфильтрованной таблицы
func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(c.io)

	query := fs.String("query", "", "Substring of title or ID (case-insensitive)")
	minRating := fs.Int("min-rating", 0, "Minimum rating, inclusive")
	maxRating := fs.Int("max-rating", 0, "Maximum rating, inclusive (0 = unbounded)")
	solvedOnly := fs.Bool("solved", false, "Only solved problems")
	starredOnly := fs.Bool("starred", false, "Only starred problems")
	sortBy := fs.String("sort", "", "Sort field: id, title, rating, difficulty, solved")
	desc := fs.Bool("desc", false, "Sort descending")
	page := fs.Int("page", 1, "Page number")
	pageSize := fs.Int("page-size", view.DefaultPageSize, "Problems per page")

	if err := fs.Parse(args); err != nil {
		return err
	}

	sortField, err := view.ParseSortField(*sortBy)
	if err != nil {
		return err
	}

	problems, err := c.dataService.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open problems: %w", err)
	}

	// Команда — контроллер своего состояния вью: собирает Query целиком
	q := view.NewQuery()
	q.PageSize = *pageSize
	q.SetFilters(view.Filters{
		Query:       *query,
		MinRating:   *minRating,
		MaxRating:   *maxRating,
		SolvedOnly:  *solvedOnly,
		StarredOnly: *starredOnly,
	})
	q.SetSort(view.Sort{Field: sortField, Desc: *desc})
	q.Page = *page

	res := view.Derive(problems, q)

	if res.Total == 0 {
		c.io.Println("No problems match the active filters.")
		return nil
	}

	c.printPage(res)
	return nil
}

// printPage форматирует страницу таблицы через tabwriter
func (c *Cli) printPage(res view.Result) {
	w := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tRATING\tDIFFICULTY\tSOLVED\tSTARRED")
	for _, p := range res.Rows {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
			p.ID, p.Title, p.Rating, p.Difficulty, mark(p.Solved), mark(p.Starred))
	}
	_ = w.Flush()

	c.io.Printf("\nPage %d/%d, %d problem(s) matched\n", res.Page, res.PageCount, res.Total)
}

func mark(b bool) string {
	if b {
		return "x"
	}
	return "-"
}

// findProblem ищет задачу по ID в полном списке
func findProblem(problems []models.Problem, id int) (models.Problem, bool) {
	for _, p := range problems {
		if p.ID == id {
			return p, true
		}
	}
	return models.Problem{}, false
}
