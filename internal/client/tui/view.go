package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/iudanet/leetkeeper/internal/client/data"
	"github.com/iudanet/leetkeeper/internal/client/view"
)

const defaultTableWidth = 110

// View отрисовывает интерфейс целиком, по состояниям
func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return fmt.Sprintf("\n  %s loading problem dataset...\n\n  %s\n",
			m.spin.View(), helpStyle.Render("q quit"))

	case stateFailed:
		var b strings.Builder
		b.WriteString("\n  " + errorStyle.Render("failed to load problem dataset") + "\n\n")
		if m.err != nil {
			b.WriteString("  " + m.err.Error() + "\n\n")
		}
		b.WriteString("  " + helpStyle.Render("r retry • q quit") + "\n")
		return b.String()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString(m.filterView())
	b.WriteString(m.tbl.View() + "\n")
	b.WriteString(m.pagerView())
	if m.editing != editNone {
		b.WriteString(m.input.View() + "\n")
	}
	if m.status != "" {
		line := m.status
		if m.loading {
			line = m.spin.View() + " " + line
		}
		b.WriteString(statusStyle.Render(line) + "\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

// headerView — заголовок со сводной статистикой по всему списку
func (m Model) headerView() string {
	title := titleStyle.Render("leetkeeper")
	stats := statsStyle.Render(fmt.Sprintf("solved %d/%d (%s%%) • starred %d",
		m.stats.Solved, m.stats.Total, m.stats.Percent, m.stats.Starred))
	return title + "  " + stats + "\n"
}

// filterView показывает активные фильтры и сортировку
func (m Model) filterView() string {
	var parts []string
	f := m.query.Filters
	if f.Query != "" {
		parts = append(parts, fmt.Sprintf("search=%q", f.Query))
	}
	if f.MinRating > 0 {
		parts = append(parts, fmt.Sprintf("min=%d", f.MinRating))
	}
	if f.MaxRating > 0 {
		parts = append(parts, fmt.Sprintf("max=%d", f.MaxRating))
	}
	if f.SolvedOnly {
		parts = append(parts, "solved")
	}
	if f.StarredOnly {
		parts = append(parts, "starred")
	}
	if m.query.Sort.Field != view.SortNone {
		dir := "asc"
		if m.query.Sort.Desc {
			dir = "desc"
		}
		parts = append(parts, fmt.Sprintf("sort=%s:%s", m.query.Sort.Field, dir))
	}
	if len(parts) == 0 {
		return ""
	}
	return filterStyle.Render("filters: "+strings.Join(parts, " ")) + "\n"
}

// pagerView — строка пагинации под таблицей
func (m Model) pagerView() string {
	return pagerStyle.Render(fmt.Sprintf("page %d/%d • %d problem(s) matched",
		m.derived.Page, m.derived.PageCount, m.derived.Total)) + "\n"
}

// helpView — подсказки по клавишам в нижней строке
func (m Model) helpView() string {
	if m.editing != editNone {
		return helpStyle.Render("enter apply • esc cancel")
	}
	return helpStyle.Render(
		"/ search • m/M rating bounds • S/F solved/starred only • o/O sort • " +
			"s solve • f star • n/t/c edit • h/l page • R refresh • esc clear • q quit")
}

// refreshStatus форматирует итог принудительного обновления
func refreshStatus(result *data.RefreshResult) string {
	if result == nil {
		return "dataset refreshed"
	}
	return fmt.Sprintf("refreshed: %d total, %d carried, %d new, %d dropped",
		result.Total, result.Carried, result.Fresh, result.Dropped)
}

// tableColumns подгоняет колонки под ширину терминала; тянется Title
func tableColumns(width int) []table.Column {
	if width <= 0 {
		width = defaultTableWidth
	}
	fixed := 6 + 7 + 8 + 3 + 3 + 8 + 8
	titleWidth := width - fixed - 18 // рамки и отступы между колонками
	if titleWidth < 20 {
		titleWidth = 20
	}
	if titleWidth > 60 {
		titleWidth = 60
	}
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "TITLE", Width: titleWidth},
		{Title: "RATING", Width: 7},
		{Title: "DIFF", Width: 8},
		{Title: "S", Width: 3},
		{Title: "★", Width: 3},
		{Title: "TC", Width: 8},
		{Title: "SC", Width: 8},
	}
}
