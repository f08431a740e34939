package timesheet

import (
	"strings"

	"github.com/marcus/timesheet/internal/dateadapter"
	"github.com/marcus/timesheet/internal/intl"
)

// Everything below derives display strings from the current state on each
// call. Nothing is stored.

// ClockHours returns the hour digits of the selection's locale time string.
func (c *Controller[D]) ClockHours() string {
	return timePart(c.adapter.ToLocaleTimeString(c.selected), 0)
}

// ClockMinutes returns the minute digits of the selection's locale time string.
func (c *Controller[D]) ClockMinutes() string {
	return timePart(c.adapter.ToLocaleTimeString(c.selected), 1)
}

func timePart(s string, i int) string {
	parts := strings.Split(s, ":")
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}

// DateHeader returns the selection formatted with the dateHeader display
// format, split on commas.
func (c *Controller[D]) DateHeader() []string {
	s := c.adapter.Format(c.selected, c.formats.DisplayFormat(dateadapter.FormatDateHeader))
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// MonthLabel returns the active date formatted with the monthYearLabel
// display format.
func (c *Controller[D]) MonthLabel() string {
	return c.adapter.Format(c.active, c.formats.DisplayFormat(dateadapter.FormatMonthYear))
}

// Label returns the phrase for a control label.
func (c *Controller[D]) Label(id intl.LabelID) string {
	return c.phrases.Label(id)
}

// Labels returns the time control labels keyed by id.
func (c *Controller[D]) Labels() map[intl.LabelID]string {
	ids := []intl.LabelID{intl.IncreaseHour, intl.DecreaseHour, intl.IncreaseMinute, intl.DecreaseMinute, intl.AMPM}
	out := make(map[intl.LabelID]string, len(ids))
	for _, id := range ids {
		out[id] = c.phrases.Label(id)
	}
	return out
}

// TimeHeight returns the height of the time sub-view for the configured panel
// height.
func (c *Controller[D]) TimeHeight() int {
	return TimeHeight(c.inputs.CalHeight)
}
