package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	filterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	pagerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// tableStyles — оформление таблицы с подсвеченной выбранной строкой
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}
