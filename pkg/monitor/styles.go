package monitor

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor = lipgloss.Color("212")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("241")
	cyanColor    = lipgloss.Color("45")
	borderColor  = lipgloss.Color("240")
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	headerMutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	statusStyle = lipgloss.NewStyle().Foreground(errorColor)
)

// Calendar cells
var (
	weekdayStyle = lipgloss.NewStyle().Foreground(mutedColor).Bold(true)
	dayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	disabledDay  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	todayStyle   = lipgloss.NewStyle().Underline(true)

	selectedDay = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	activeDay = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true)
)

// Time controls
var (
	clockStyle = lipgloss.NewStyle().
			Foreground(cyanColor).
			Bold(true)

	button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 1)

	buttonKey = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)
)
