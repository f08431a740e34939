// Package dateadapter defines the date arithmetic and formatting capability the
// picker consumes, and a concrete implementation over time.Time.
//
// The picker never inspects an instant directly. Every read and every mutation
// goes through an Adapter, so the instant type D stays opaque to callers.
package dateadapter

// Adapter provides date/time arithmetic and formatting for an instant type D.
// All methods must be pure functions of their arguments; only Today may observe
// a clock.
type Adapter[D any] interface {
	// Today returns the current instant.
	Today() D

	GetHours(d D) int
	// SetHours returns d with its hour set to h. Out-of-range values wrap
	// according to the adapter's own semantics.
	SetHours(d D, h int) D
	GetMinutes(d D) int
	// SetMinutes returns d with its minute set to m. Out-of-range values wrap
	// according to the adapter's own semantics.
	SetMinutes(d D, m int) D

	// CompareDate returns <0, 0 or >0 when a is before, equal to or after b.
	CompareDate(a, b D) int
	// ClampDate returns d bounded by min and max. A nil bound is unconstrained.
	ClampDate(d D, min, max *D) D
	// IsPM reports whether d falls at or after noon.
	IsPM(d D) bool

	// ToLocaleTimeString renders the clock portion of d, with hours and
	// minutes separated by ':'.
	ToLocaleTimeString(d D) string
	// Format renders d using an adapter-specific format descriptor.
	Format(d D, format string) string

	AddCalendarDays(d D, days int) D
	AddCalendarMonths(d D, months int) D
	// WithDate returns the calendar date of date combined with the clock of clock.
	WithDate(date, clock D) D
}

// Display format names looked up in Formats.Display.
const (
	FormatDateHeader = "dateHeader"
	FormatDateInput  = "dateInput"
	FormatMonthYear  = "monthYearLabel"
)

// Formats is the set of display format descriptors handed to the picker.
type Formats struct {
	Parse   map[string]string
	Display map[string]string
}

// DisplayFormat returns the named display descriptor, or "" when unset.
func (f *Formats) DisplayFormat(name string) string {
	if f == nil || f.Display == nil {
		return ""
	}
	return f.Display[name]
}

// Merge returns a copy of f with the non-empty display entries of overrides
// applied on top.
func (f *Formats) Merge(overrides map[string]string) *Formats {
	out := &Formats{
		Parse:   make(map[string]string, len(f.Parse)),
		Display: make(map[string]string, len(f.Display)+len(overrides)),
	}
	for k, v := range f.Parse {
		out.Parse[k] = v
	}
	for k, v := range f.Display {
		out.Display[k] = v
	}
	for k, v := range overrides {
		if v != "" {
			out.Display[k] = v
		}
	}
	return out
}
