package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/timesheet/internal/config"
	"github.com/marcus/timesheet/internal/dateadapter"
	"github.com/marcus/timesheet/internal/output"
	"github.com/marcus/timesheet/pkg/monitor"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Open the picker and print the saved date",
	Long: `Open the date and time picker. On save the selection is printed to stdout
as RFC3339; closing the picker exits with status 1.

The picker draws on stderr so the result can be captured:

  when=$(timesheet pick --min today --weekdays-only)

Without a terminal, or with --accessible, the picker asks for the date and
time as plain line prompts instead.

Dates accept YYYY-MM-DD, YYYY-MM-DD HH:MM, RFC3339, today, tomorrow,
yesterday and relative offsets such as +3d, -1w or +2m.`,
	GroupID: "picker",
	Args:    cobra.NoArgs,
	RunE:    runPick,
}

var (
	pickOpts       pickerOptions
	pickSelected   *dateValue
	pickDate       *dateValue
	pickAccessible bool
)

func init() {
	rootCmd.AddCommand(pickCmd)

	fs := pickCmd.Flags()
	pickSelected = newDateValue(time.Now)
	pickDate = newDateValue(time.Now)
	fs.Var(pickSelected, "selected", "Initial selection (default now)")
	fs.Var(pickDate, "date", "Month to show first (default the selection)")
	fs.Var(&pickOpts.view, "view", "First view: calendar or timesheet")
	fs.Var(&pickOpts.timeView, "time-view", "View to switch to after picking a date")
	fs.BoolVar(&pickOpts.hideTime, "hide-time", false, "Pick a date only")
	fs.IntVar(&pickOpts.height, "height", 0, "Panel height in layout units")
	fs.BoolVar(&pickAccessible, "accessible", false, "Use line prompts instead of the full-screen picker")
	pickOpts.constraints = addConstraintFlags(fs, time.Now)
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", config.Path(getBaseDir()), err)
	}

	opts := pickOpts
	opts.selected = pickSelected.Time()
	opts.date = pickDate.Time()

	in, err := resolveInputs(cfg, opts, time.Now())
	if err != nil {
		return err
	}
	picker, err := newPicker(cfg, dateadapter.NewNative(), in)
	if err != nil {
		return err
	}

	var outcome monitor.Outcome
	if pickAccessible || !interactive() {
		outcome, err = monitor.RunAccessible(picker, os.Stdin, os.Stderr)
	} else {
		outcome, err = monitor.Run(picker, tea.WithOutput(os.Stderr))
	}
	if err != nil {
		return err
	}

	if !outcome.Saved {
		output.Warning("cancelled")
		return quietExit{reason: "cancelled"}
	}
	output.Plain("%s", outcome.Value.Format(time.RFC3339))
	return nil
}

// interactive reports whether the full-screen picker can run: keys come from
// stdin and the picker draws on stderr.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}
