package cmd

import (
	"fmt"
	"time"

	"github.com/marcus/timesheet/internal/config"
	"github.com/marcus/timesheet/internal/constraint"
	"github.com/marcus/timesheet/internal/dateadapter"
	"github.com/marcus/timesheet/internal/intl"
	"github.com/marcus/timesheet/internal/timesheet"
)

// pickerOptions are the command-line overrides for a picker session.
type pickerOptions struct {
	selected    *time.Time
	date        *time.Time
	view        viewValue
	timeView    viewValue
	hideTime    bool
	height      int
	constraints *constraintFlags
}

// resolveInputs merges the project config with the command-line options.
// Flags win over config values; boolean switches are on if either sets them.
func resolveInputs(cfg *config.Config, opts pickerOptions, now time.Time) (timesheet.Inputs[time.Time], error) {
	var in timesheet.Inputs[time.Time]

	view, err := timesheet.ParsePickerView(cfg.PickerView)
	if err != nil {
		return in, fmt.Errorf("picker_view: %w", err)
	}
	if opts.view.set {
		view = opts.view.view
	}

	timeView := timesheet.ViewTimesheet
	if cfg.TimeView != "" {
		if timeView, err = timesheet.ParsePickerView(cfg.TimeView); err != nil {
			return in, fmt.Errorf("time_view: %w", err)
		}
	}
	if opts.timeView.set {
		timeView = opts.timeView.view
	}

	min, max, err := cfg.Bounds(now)
	if err != nil {
		return in, err
	}
	filterWeekdays := cfg.WeekdaysOnly
	if c := opts.constraints; c != nil {
		if t := c.min.Time(); t != nil {
			min = t
		}
		if t := c.max.Time(); t != nil {
			max = t
		}
		filterWeekdays = filterWeekdays || c.weekdaysOnly
	}

	height := cfg.Height()
	if opts.height > 0 {
		height = opts.height
	}

	in = timesheet.Inputs[time.Time]{
		PickerView: view,
		Selected:   opts.selected,
		MinDate:    min,
		MaxDate:    max,
		TimeView:   timeView,
		CalHeight:  height,
		HideTime:   cfg.HideTime || opts.hideTime,
		Date:       opts.date,
	}
	if filterWeekdays {
		in.DateFilter = weekdaysOnly
	}
	return in, nil
}

// newPicker builds a controller over the native time adapter, with display
// formats and phrases overridden from the config.
func newPicker(cfg *config.Config, adapter *dateadapter.Native, in timesheet.Inputs[time.Time]) (*timesheet.Controller[time.Time], error) {
	formats := dateadapter.NativeFormats().Merge(cfg.Formats)
	phrases := intl.Default().With(cfg.Phrases)
	return timesheet.New[time.Time](adapter, formats, phrases, in)
}

// newEvaluator builds the constraint evaluator used by check, from the same
// merged inputs a picker would get.
func newEvaluator(adapter *dateadapter.Native, in timesheet.Inputs[time.Time]) *constraint.Evaluator[time.Time] {
	return &constraint.Evaluator[time.Time]{
		MinDate: in.MinDate,
		MaxDate: in.MaxDate,
		Filter:  in.DateFilter,
		Compare: adapter.CompareDate,
	}
}
