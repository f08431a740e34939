package monitor

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/marcus/timesheet/internal/dateparse"
	"github.com/marcus/timesheet/internal/events"
	"github.com/marcus/timesheet/internal/timesheet"
)

// watch records save and close events from picker into an Outcome until
// unsubscribe is called.
func watch(picker *timesheet.Controller[time.Time]) (out *Outcome, unsubscribe func()) {
	out = &Outcome{}
	unsubscribe = picker.Subscribe(func(ev events.Event[time.Time]) {
		switch ev.Type {
		case events.Save:
			out.Saved = true
			out.Value = ev.Instant
		case events.CloseDialog:
			out.Cancelled = ev.Close
		}
	})
	return out, unsubscribe
}

// RunAccessible asks for the date, and the time unless the picker is
// date-only, as plain line prompts. Answers are checked against the picker's
// constraints and applied through its transitions before saving.
func RunAccessible(picker *timesheet.Controller[time.Time], in io.Reader, out io.Writer) (Outcome, error) {
	result, unwatch := watch(picker)
	defer unwatch()
	now := picker.Adapter().Today()

	var dateAnswer, timeAnswer string
	dateField := huh.NewInput().
		Title("Date").
		Description("YYYY-MM-DD, today, tomorrow or +Nd. Empty keeps " + picker.Selected().Format("2006-01-02")).
		Value(&dateAnswer).
		Validate(func(s string) error {
			_, err := resolveDate(picker, s, now)
			return err
		})
	fields := []huh.Field{dateField}

	if picker.Mode() == timesheet.TimeAndCalendar {
		fields = append(fields, huh.NewInput().
			Title("Time").
			Description("HH:MM, 24-hour. Empty keeps " + picker.Selected().Format("15:04")).
			Value(&timeAnswer).
			Validate(func(s string) error {
				_, _, err := parseClock(s)
				return err
			}))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithAccessible(true).
		WithInput(in).
		WithOutput(out)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			picker.Close()
			return *result, nil
		}
		return Outcome{}, err
	}

	if strings.TrimSpace(dateAnswer) != "" {
		date, err := resolveDate(picker, dateAnswer, now)
		if err != nil {
			return Outcome{}, err
		}
		picker.PickDate(date)
	}
	if h, m, err := parseClock(timeAnswer); err == nil && h >= 0 {
		ApplyClock(picker, h, m)
	}

	picker.Save()
	return *result, nil
}

// resolveDate parses a date answer and checks it against the constraints.
// An empty answer resolves to the current selection.
func resolveDate(picker *timesheet.Controller[time.Time], s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return picker.Selected(), nil
	}
	t, err := dateparse.Parse(s, now)
	if err != nil {
		return time.Time{}, err
	}
	if err := picker.Evaluator().Explain(&t); err != nil {
		return time.Time{}, fmt.Errorf("%s is not available: %w", t.Format("2006-01-02"), err)
	}
	return t, nil
}

// parseClock parses "HH:MM". An empty answer returns -1, -1 and no error.
func parseClock(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1, -1, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	return t.Hour(), t.Minute(), nil
}

// ApplyClock steps the picker's hour and minute controls until the selection
// reads hour:minute, taking the shorter way round each dial.
func ApplyClock(picker *timesheet.Controller[time.Time], hour, minute int) {
	a := picker.Adapter()
	step(a.GetHours(picker.Selected()), hour, 24, picker.IncreaseHour, picker.DecreaseHour)
	step(a.GetMinutes(picker.Selected()), minute, 60, picker.IncreaseMinute, picker.DecreaseMinute)
}

func step(from, to, size int, inc, dec func()) {
	forward := ((to-from)%size + size) % size
	if forward <= size/2 {
		for i := 0; i < forward; i++ {
			inc()
		}
		return
	}
	for i := 0; i < size-forward; i++ {
		dec()
	}
}
