// Package timesheet implements the selection state of a combined date/time
// picker.
//
// A Controller owns two instants: the selection, which the time controls edit
// and which is committed on Save, and the active date, which keyboard
// navigation moves around the calendar. The active date is clamped into
// [MinDate, MaxDate] on every write. The selection is not clamped; only dates
// offered through PickDate are checked against the constraints.
//
// The controller also caches whether the selection is in the afternoon. After
// each transition it owns, the flag is re-derived from the selection, so the
// two always agree. When the host changes inputs with SetInputs the flag is
// the user's last chosen half-day, and the selection is shifted by twelve hours
// if it landed on the other side of noon.
//
// All methods run synchronously and are meant to be called from a single
// goroutine.
package timesheet

import (
	"github.com/marcus/timesheet/internal/constraint"
	"github.com/marcus/timesheet/internal/dateadapter"
	"github.com/marcus/timesheet/internal/events"
	"github.com/marcus/timesheet/internal/intl"
)

// Controller is the picker's selection state machine.
type Controller[D any] struct {
	adapter dateadapter.Adapter[D]
	formats *dateadapter.Formats
	phrases intl.Phrases
	inputs  Inputs[D]

	selected  D
	active    D
	pm        bool
	mode      Mode
	timeShown bool

	// untoggle is the selection before the last TogglePM, while nothing else
	// has moved it since.
	untoggle *D

	bus events.Bus[D]
}

// New validates the collaborators and initializes the selection from inputs.
// A nil phrase table falls back to intl.Default.
func New[D any](adapter dateadapter.Adapter[D], formats *dateadapter.Formats, phrases intl.Phrases, inputs Inputs[D]) (*Controller[D], error) {
	if adapter == nil {
		return nil, ErrMissingDateAdapter
	}
	if formats == nil {
		return nil, ErrMissingDateFormats
	}
	if phrases == nil {
		phrases = intl.Default()
	}

	c := &Controller[D]{
		adapter: adapter,
		formats: formats,
		phrases: phrases,
		inputs:  inputs,
	}

	if inputs.Selected != nil {
		c.selected = *inputs.Selected
	} else {
		c.selected = adapter.Today()
	}
	c.pm = adapter.IsPM(c.selected)
	c.mode = inputs.mode()
	c.timeShown = c.mode == TimeAndCalendar && inputs.PickerView == ViewTimesheet

	if inputs.Date != nil {
		c.SetActiveDate(*inputs.Date)
	} else {
		c.SetActiveDate(c.selected)
	}
	return c, nil
}

// Subscribe registers a listener for picker events.
func (c *Controller[D]) Subscribe(fn events.Listener[D]) (unsubscribe func()) {
	return c.bus.Subscribe(fn)
}

// Listeners returns the number of subscribed listeners.
func (c *Controller[D]) Listeners() int { return c.bus.Len() }

// Selected returns the current selection.
func (c *Controller[D]) Selected() D { return c.selected }

// ActiveDate returns the navigation date.
func (c *Controller[D]) ActiveDate() D { return c.active }

// IsPM reports the cached afternoon flag.
func (c *Controller[D]) IsPM() bool { return c.pm }

// AMPM returns the AM/PM toggle label.
func (c *Controller[D]) AMPM() string {
	if c.pm {
		return "PM"
	}
	return "AM"
}

// Mode returns which controls the picker offers.
func (c *Controller[D]) Mode() Mode { return c.mode }

// TimeViewShown reports whether the time sub-view is showing.
func (c *Controller[D]) TimeViewShown() bool { return c.timeShown }

// HideTime reports whether the picker is date-only.
func (c *Controller[D]) HideTime() bool { return c.inputs.HideTime }

// Inputs returns the inputs currently in effect.
func (c *Controller[D]) Inputs() Inputs[D] { return c.inputs }

// Adapter returns the date adapter the controller was built with.
func (c *Controller[D]) Adapter() dateadapter.Adapter[D] { return c.adapter }

// Evaluator returns a constraint evaluator over the current inputs.
func (c *Controller[D]) Evaluator() *constraint.Evaluator[D] {
	return &constraint.Evaluator[D]{
		MinDate: c.inputs.MinDate,
		MaxDate: c.inputs.MaxDate,
		Filter:  c.inputs.DateFilter,
		Compare: c.adapter.CompareDate,
	}
}

// IsSelectable reports whether date passes the current constraints.
func (c *Controller[D]) IsSelectable(date *D) bool {
	return c.Evaluator().IsSelectable(date)
}

// IncreaseHour moves the selection one hour forward.
func (c *Controller[D]) IncreaseHour() {
	c.stepHours(1)
}

// DecreaseHour moves the selection one hour back.
func (c *Controller[D]) DecreaseHour() {
	c.stepHours(-1)
}

// IncreaseMinute moves the selection one minute forward. Wrapping past 59 is
// left to the adapter; the controller never carries into the hour.
func (c *Controller[D]) IncreaseMinute() {
	c.stepMinutes(1)
}

// DecreaseMinute moves the selection one minute back.
func (c *Controller[D]) DecreaseMinute() {
	c.stepMinutes(-1)
}

// TogglePM moves the selection twelve hours into the other half of the day.
// A second toggle with no transition in between restores the selection
// exactly, even when the first landed off by the length of a daylight saving
// gap.
func (c *Controller[D]) TogglePM() {
	if c.untoggle != nil {
		c.setSelected(*c.untoggle)
		return
	}
	from := c.selected
	h := c.adapter.GetHours(from)
	if c.adapter.IsPM(from) {
		c.setSelected(c.adapter.SetHours(from, h-12))
	} else {
		c.setSelected(c.adapter.SetHours(from, h+12))
	}
	c.untoggle = &from
}

// SetInputs replaces the host inputs. A Selected that differs from the one
// the host supplied last replaces the selection, which is then pulled into
// the half-day the AM/PM flag names. Re-sending the previous Selected, e.g.
// to change only MinDate, keeps the user's edits. A SelectedChange event
// fires only if the selection moved.
func (c *Controller[D]) SetInputs(in Inputs[D]) {
	prev := c.inputs.Selected
	c.inputs = in
	c.mode = in.mode()
	if c.mode == CalendarOnly {
		c.timeShown = false
	}
	c.untoggle = nil

	changed := false
	if in.Selected != nil && !c.sameClock(prev, in.Selected) {
		c.selected = *in.Selected
		changed = true
	}
	if c.reconcile() {
		changed = true
	}
	c.SetActiveDate(c.active)

	if changed {
		c.bus.EmitSelectedChange(c.selected)
	}
}

// sameClock reports whether a and b name the same day, hour and minute.
func (c *Controller[D]) sameClock(a, b *D) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	return c.adapter.CompareDate(*a, *b) == 0 &&
		c.adapter.GetHours(*a) == c.adapter.GetHours(*b) &&
		c.adapter.GetMinutes(*a) == c.adapter.GetMinutes(*b)
}

// reconcile shifts the selection by twelve hours when it disagrees with the
// AM/PM flag. It reports whether the selection moved.
func (c *Controller[D]) reconcile() bool {
	isPM := c.adapter.IsPM(c.selected)
	h := c.adapter.GetHours(c.selected)
	switch {
	case !c.pm && isPM:
		c.selected = c.adapter.SetHours(c.selected, h-12)
	case c.pm && !isPM:
		c.selected = c.adapter.SetHours(c.selected, h+12)
	default:
		return false
	}
	return true
}

// SetActiveDate moves the navigation date, clamped into [MinDate, MaxDate].
func (c *Controller[D]) SetActiveDate(d D) {
	c.active = c.adapter.ClampDate(d, c.inputs.MinDate, c.inputs.MaxDate)
}

// MoveActiveDate moves the navigation date by a number of days.
func (c *Controller[D]) MoveActiveDate(days int) {
	c.SetActiveDate(c.adapter.AddCalendarDays(c.active, days))
}

// MoveActiveMonth moves the navigation date by a number of months.
func (c *Controller[D]) MoveActiveMonth(months int) {
	c.SetActiveDate(c.adapter.AddCalendarMonths(c.active, months))
}

// PickDate moves the selection to the calendar date of d, keeping the
// selection's clock. Dates that fail the constraints are refused and false is
// returned.
func (c *Controller[D]) PickDate(d D) bool {
	if !c.IsSelectable(&d) {
		return false
	}
	c.SetActiveDate(d)
	c.setSelected(c.adapter.WithDate(d, c.selected))
	if c.mode == TimeAndCalendar && c.inputs.TimeView == ViewTimesheet {
		c.timeShown = true
	}
	return true
}

// PickActiveDate picks the current navigation date.
func (c *Controller[D]) PickActiveDate() bool {
	return c.PickDate(c.active)
}

// ToggleTimeView flips between the calendar and time sub-views.
func (c *Controller[D]) ToggleTimeView() {
	c.ShowTimeView(!c.timeShown)
}

// ShowTimeView shows or hides the time sub-view. A date-only picker never
// shows it.
func (c *Controller[D]) ShowTimeView(show bool) {
	c.timeShown = show && c.mode == TimeAndCalendar
}

// Save commits the selection to the host. It does not close the picker.
func (c *Controller[D]) Save() {
	c.bus.EmitSave(c.selected)
}

// Close asks the host to dismiss the picker. The selection is untouched.
func (c *Controller[D]) Close() {
	c.bus.EmitCloseDialog()
}

func (c *Controller[D]) stepHours(delta int) {
	c.setSelected(c.adapter.SetHours(c.selected, c.adapter.GetHours(c.selected)+delta))
}

func (c *Controller[D]) stepMinutes(delta int) {
	c.setSelected(c.adapter.SetMinutes(c.selected, c.adapter.GetMinutes(c.selected)+delta))
}

// setSelected assigns the selection, re-derives the AM/PM flag and notifies
// listeners.
func (c *Controller[D]) setSelected(d D) {
	c.selected = d
	c.untoggle = nil
	c.pm = c.adapter.IsPM(d)
	c.bus.EmitSelectedChange(d)
}
