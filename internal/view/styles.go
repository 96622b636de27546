package view

import "github.com/charmbracelet/lipgloss"

var (
	appStyle    = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(16)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	errorBox    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	nameColumn  = lipgloss.NewStyle().Width(24)
	raceColumn  = lipgloss.NewStyle().Width(14)
	idColumn    = lipgloss.NewStyle().Width(5)
	stateColumn = lipgloss.NewStyle().Width(12)
)
