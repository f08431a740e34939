package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/timesheet/internal/dateadapter"
)

// calendarDay describes how one day cell is drawn.
type calendarDay struct {
	Day        int
	Selectable bool
	IsToday    bool
	IsSelected bool
	IsActive   bool
}

// monthDays builds the cell states for the month containing active.
func (m Model) monthDays(active time.Time) []calendarDay {
	today := m.picker.Adapter().Today()
	selected := m.picker.Selected()
	n := dateadapter.DaysIn(active)

	days := make([]calendarDay, 0, n)
	for d := 1; d <= n; d++ {
		date := time.Date(active.Year(), active.Month(), d, 0, 0, 0, 0, active.Location())
		days = append(days, calendarDay{
			Day:        d,
			Selectable: m.picker.IsSelectable(&date),
			IsToday:    sameDay(date, today),
			IsSelected: sameDay(date, selected),
			IsActive:   d == active.Day(),
		})
	}
	return days
}

// renderCalendar draws a Sunday-first month grid for the active date.
func (m Model) renderCalendar() string {
	active := m.picker.ActiveDate()
	days := m.monthDays(active)

	first := time.Date(active.Year(), active.Month(), 1, 0, 0, 0, 0, active.Location())
	startOffset := int(first.Weekday())
	rows := (startOffset + len(days) + 6) / 7

	lines := []string{weekdayStyle.Render("Su Mo Tu We Th Fr Sa")}
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > len(days) {
				cells = append(cells, "  ")
				continue
			}
			cells = append(cells, renderDay(days[day-1]))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderDay(info calendarDay) string {
	text := fmt.Sprintf("%2d", info.Day)

	style := dayStyle
	if !info.Selectable {
		style = disabledDay
	}
	if info.IsSelected {
		style = selectedDay
	}
	if info.IsToday {
		style = style.Inherit(todayStyle)
	}
	if info.IsActive {
		style = activeDay.Inherit(lipgloss.NewStyle().Strikethrough(!info.Selectable))
	}
	return style.Render(text)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
