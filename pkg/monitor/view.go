package monitor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/timesheet/internal/intl"
	"github.com/marcus/timesheet/internal/timesheet"
)

// unitsPerLine converts the configured panel height into terminal rows.
const unitsPerLine = 20

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{m.renderHeader(), ""}

	if m.picker.TimeViewShown() {
		sections = append(sections, m.renderTimeControls())
	} else {
		sections = append(sections,
			headerMutedStyle.Render(m.picker.MonthLabel()),
			m.renderCalendar())
	}

	if m.Status != "" {
		sections = append(sections, "", statusStyle.Render(m.Status))
	}
	sections = append(sections, "", m.help.View(m.keys))

	panel := panelStyle.Render(strings.Join(sections, "\n"))
	if m.Width > 0 && m.Height > 0 {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, panel)
	}
	return panel
}

// renderHeader shows the selection as date parts and, unless the picker is
// date-only, the clock.
func (m Model) renderHeader() string {
	parts := m.picker.DateHeader()
	date := headerStyle.Render(strings.Join(parts, " · "))
	if m.picker.Mode() == timesheet.CalendarOnly {
		return date
	}
	clock := clockStyle.Render(m.picker.ClockHours() + ":" + m.picker.ClockMinutes() + " " + m.picker.AMPM())
	return date + "  " + clock
}

// renderTimeControls lists the time buttons with their keys, padded to the
// height left by the configured panel.
func (m Model) renderTimeControls() string {
	rows := []struct {
		id      intl.LabelID
		binding key.Binding
	}{
		{intl.IncreaseHour, m.keys.HourUp},
		{intl.DecreaseHour, m.keys.HourDown},
		{intl.IncreaseMinute, m.keys.MinuteUp},
		{intl.DecreaseMinute, m.keys.MinuteDown},
		{intl.AMPM, m.keys.AMPM},
	}

	labels := m.picker.Labels()
	lines := []string{
		clockStyle.Render(padCenter(m.picker.ClockHours()+" : "+m.picker.ClockMinutes(), 20)),
		"",
	}
	for _, r := range rows {
		lines = append(lines, buttonKey.Render(padRight(r.binding.Help().Key, 3))+" "+button.Render(labels[r.id]))
	}

	want := m.picker.TimeHeight() / unitsPerLine
	for len(lines) < want {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padCenter(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
