package timesheet

import (
	"fmt"
	"strings"
)

// PickerView names one of the two sub-views.
type PickerView string

const (
	ViewCalendar  PickerView = "calendar"
	ViewTimesheet PickerView = "timesheet"
)

// ParsePickerView accepts "calendar" or "timesheet" (case-insensitive, "time"
// as shorthand). An empty string is the calendar view.
func ParsePickerView(s string) (PickerView, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "calendar", "date":
		return ViewCalendar, nil
	case "timesheet", "time":
		return ViewTimesheet, nil
	default:
		return "", fmt.Errorf("invalid picker view %q (want calendar or timesheet)", s)
	}
}

// Mode says which controls the picker offers.
type Mode int

const (
	// CalendarOnly offers the date grid and no time controls.
	CalendarOnly Mode = iota
	// TimeAndCalendar offers the date grid and the time sub-view.
	TimeAndCalendar
)

func (m Mode) String() string {
	if m == CalendarOnly {
		return "calendar-only"
	}
	return "time-and-calendar"
}

// Fixed chrome around the time sub-view, in the same units as CalHeight.
const (
	HeaderHeight = 84
	FooterHeight = 40
)

// TimeHeight returns the height left for the time sub-view inside a panel of
// the given total height.
func TimeHeight(total int) int {
	return total - HeaderHeight - FooterHeight
}

// Inputs is the configuration a host hands to the picker. Every field is
// optional.
type Inputs[D any] struct {
	// PickerView is the sub-view shown first.
	PickerView PickerView
	// Selected is the initial selection. Defaults to the adapter's Today.
	Selected *D
	MinDate  *D
	MaxDate  *D
	// DateFilter rejects individual dates when it returns false.
	DateFilter func(D) bool
	// TimeView is the sub-view to switch to after a date is picked.
	TimeView PickerView
	// CalHeight is the total panel height.
	CalHeight int
	// HideTime turns the picker into a date-only picker.
	HideTime bool
	// Date is the initial navigation target. Defaults to the selection.
	Date *D
}

func (in Inputs[D]) mode() Mode {
	if in.HideTime {
		return CalendarOnly
	}
	return TimeAndCalendar
}
