package dateadapter

import "time"

// NativeFormats are the default Go layouts used with the Native adapter.
func NativeFormats() *Formats {
	return &Formats{
		Parse: map[string]string{
			FormatDateInput: "2006-01-02",
		},
		Display: map[string]string{
			FormatDateHeader: "Mon, Jan 2",
			FormatDateInput:  "2006-01-02",
			FormatMonthYear:  "January 2006",
		},
	}
}

// Native implements Adapter over time.Time.
//
// Dates compare at day granularity. Hours and minutes wrap inside the same
// calendar day unless Carry is set, in which case overflow normalizes into the
// neighbouring day the way time.Date does.
type Native struct {
	// Location is used for Today. Defaults to time.Local.
	Location *time.Location
	// Carry lets SetHours/SetMinutes roll into adjacent days.
	Carry bool
	// Now is the clock behind Today. Defaults to time.Now.
	Now func() time.Time
}

var _ Adapter[time.Time] = (*Native)(nil)

// NewNative returns a Native adapter using the local clock and zone.
func NewNative() *Native {
	return &Native{Location: time.Local, Now: time.Now}
}

func (n *Native) Today() time.Time {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	loc := n.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

func (n *Native) GetHours(d time.Time) int { return d.Hour() }

// SetHours moves d to hour h of its day. An hour skipped by a daylight saving
// change resolves to the instant on the side of the gap h was moving towards,
// so stepping the hour never stalls at the gap.
func (n *Native) SetHours(d time.Time, h int) time.Time {
	if !n.Carry {
		h = wrap(h, 24)
	}
	return onWallClock(d, h, d.Minute(), h > d.Hour())
}

func (n *Native) GetMinutes(d time.Time) int { return d.Minute() }

func (n *Native) SetMinutes(d time.Time, m int) time.Time {
	if !n.Carry {
		m = wrap(m, 60)
	}
	return onWallClock(d, d.Hour(), m, m > d.Minute())
}

// onWallClock returns d's day at h:m. When h:m does not exist because the
// clocks jumped forward over it, the result is moved by the length of the
// gap: past it when forward, before it otherwise. Out-of-range h or m
// normalize the way time.Date does.
func onWallClock(d time.Time, h, m int, forward bool) time.Time {
	t := time.Date(d.Year(), d.Month(), d.Day(), h, m, d.Second(), d.Nanosecond(), d.Location())
	if t.Hour() == h && t.Minute() == m {
		return t
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return t
	}

	_, before := t.Add(-3 * time.Hour).Zone()
	_, after := t.Add(3 * time.Hour).Zone()
	if before == after {
		return t
	}
	wall := time.Date(d.Year(), d.Month(), d.Day(), h, m, d.Second(), d.Nanosecond(), time.UTC)
	offset := after
	if forward {
		offset = before
	}
	return wall.Add(-time.Duration(offset) * time.Second).In(d.Location())
}

// CompareDate compares the calendar dates of a and b, ignoring the clock.
func (n *Native) CompareDate(a, b time.Time) int {
	if c := a.Year() - b.Year(); c != 0 {
		return c
	}
	if c := int(a.Month()) - int(b.Month()); c != 0 {
		return c
	}
	return a.Day() - b.Day()
}

func (n *Native) ClampDate(d time.Time, min, max *time.Time) time.Time {
	if min != nil && n.CompareDate(d, *min) < 0 {
		return *min
	}
	if max != nil && n.CompareDate(d, *max) > 0 {
		return *max
	}
	return d
}

func (n *Native) IsPM(d time.Time) bool { return d.Hour() >= 12 }

// ToLocaleTimeString renders d as "3:04:05 PM".
func (n *Native) ToLocaleTimeString(d time.Time) string {
	return d.Format("3:04:05 PM")
}

// Format renders d with a Go layout.
func (n *Native) Format(d time.Time, layout string) string {
	return d.Format(layout)
}

func (n *Native) AddCalendarDays(d time.Time, days int) time.Time {
	return d.AddDate(0, 0, days)
}

// AddCalendarMonths adds months, pinning the day to the last day of the target
// month instead of overflowing into the next one.
func (n *Native) AddCalendarMonths(d time.Time, months int) time.Time {
	first := time.Date(d.Year(), d.Month()+time.Month(months), 1, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
	day := d.Day()
	if last := DaysIn(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

func (n *Native) WithDate(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), clock.Location())
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	// Day 0 of next month is last day of this month.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
