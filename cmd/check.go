package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/marcus/timesheet/internal/config"
	"github.com/marcus/timesheet/internal/constraint"
	"github.com/marcus/timesheet/internal/dateadapter"
	"github.com/marcus/timesheet/internal/dateparse"
	"github.com/marcus/timesheet/internal/output"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check DATE",
	Short: "Check whether a date is selectable",
	Long: `Check DATE against the configured minimum date, maximum date and weekday
filter, without opening the picker. Every failing constraint is reported and
the command exits with status 1 when the date is not selectable.`,
	Example: `  timesheet check 2024-07-06 --weekdays-only
  timesheet check +30d --max +2w`,
	GroupID: "picker",
	Args:    cobra.ExactArgs(1),
	RunE:    runCheck,
}

var checkConstraints *constraintFlags

func init() {
	rootCmd.AddCommand(checkCmd)
	checkConstraints = addConstraintFlags(checkCmd.Flags(), time.Now)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return err
	}

	failures, err := checkDate(cfg, checkConstraints, args[0], time.Now())
	if err != nil {
		return err
	}
	if len(failures) > 0 {
		for _, f := range failures {
			output.Error("%s: %s", f.GuardName, f.Reason)
		}
		return quietExit{reason: "not selectable"}
	}
	output.Success("%s is selectable", args[0])
	return nil
}

// checkDate evaluates arg against the merged constraints and returns each
// failing guard. An empty result means the date is selectable.
func checkDate(cfg *config.Config, cf *constraintFlags, arg string, now time.Time) ([]*constraint.GuardError, error) {
	date, err := dateparse.Parse(arg, now)
	if err != nil {
		return nil, err
	}
	in, err := resolveInputs(cfg, pickerOptions{constraints: cf}, now)
	if err != nil {
		return nil, err
	}

	adapter := dateadapter.NewNative()
	adapter.Location = now.Location()
	explained := newEvaluator(adapter, in).Explain(&date)
	if explained == nil {
		return nil, nil
	}

	var verr *constraint.ValidationError
	if !errors.As(explained, &verr) {
		return nil, fmt.Errorf("check %s: %w", arg, explained)
	}
	failures := make([]*constraint.GuardError, 0, len(verr.Errors))
	for _, e := range verr.Errors {
		var gerr *constraint.GuardError
		if errors.As(e, &gerr) {
			failures = append(failures, gerr)
		}
	}
	return failures, nil
}
