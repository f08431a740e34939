package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/marcus/timesheet/internal/workdir"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
	debug   bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Terminal date and time picker",
	Long: `timesheet - A date and time picker for the terminal.

Pick a date on a calendar and, optionally, a time of day, constrained by a
minimum date, a maximum date and a weekday filter. The saved value is printed
as RFC3339 so scripts can capture it.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !isQuietExit(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "picker", Title: "Picker Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log picker events to stderr")
	cobra.OnInitialize(initBaseDir)
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = workdir.ResolveBaseDir(baseDir)
}

// setupLogging installs the default slog handler for the run.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

// quietExit is returned when the command already reported the failure.
type quietExit struct{ reason string }

func (e quietExit) Error() string { return e.reason }

func isQuietExit(err error) bool {
	_, ok := err.(quietExit)
	return ok
}
