package cmd

import (
	"time"

	"github.com/marcus/timesheet/internal/dateparse"
	"github.com/marcus/timesheet/internal/timesheet"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value accepting anything dateparse understands.
type dateValue struct {
	raw string
	t   *time.Time
	now func() time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(now func() time.Time) *dateValue {
	return &dateValue{now: now}
}

func (v *dateValue) String() string {
	return v.raw
}

func (v *dateValue) Set(s string) error {
	t, err := dateparse.Parse(s, v.now())
	if err != nil {
		return err
	}
	v.raw = s
	v.t = &t
	return nil
}

func (v *dateValue) Type() string {
	return "date"
}

// Time returns the parsed value, or nil when the flag was not given.
func (v *dateValue) Time() *time.Time {
	return v.t
}

// viewValue is a pflag.Value restricted to the picker view names.
type viewValue struct {
	view timesheet.PickerView
	set  bool
}

var _ pflag.Value = (*viewValue)(nil)

func (v *viewValue) String() string {
	return string(v.view)
}

func (v *viewValue) Set(s string) error {
	view, err := timesheet.ParsePickerView(s)
	if err != nil {
		return err
	}
	v.view = view
	v.set = true
	return nil
}

func (v *viewValue) Type() string {
	return "view"
}

// constraintFlags are shared by pick and check.
type constraintFlags struct {
	min          *dateValue
	max          *dateValue
	weekdaysOnly bool
}

func addConstraintFlags(fs *pflag.FlagSet, now func() time.Time) *constraintFlags {
	cf := &constraintFlags{
		min: newDateValue(now),
		max: newDateValue(now),
	}
	fs.Var(cf.min, "min", "Earliest selectable date")
	fs.Var(cf.max, "max", "Latest selectable date")
	fs.BoolVar(&cf.weekdaysOnly, "weekdays-only", false, "Exclude Saturdays and Sundays")
	return cf
}

func weekdaysOnly(d time.Time) bool {
	return d.Weekday() != time.Saturday && d.Weekday() != time.Sunday
}
