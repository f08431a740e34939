package cmd

import (
	"fmt"
	"os"

	"github.com/marcus/timesheet/internal/config"
	"github.com/marcus/timesheet/internal/output"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default picker config",
	Long: `Write .timesheet/config.json in the current directory with the default
picker settings. An existing config is left alone unless --force is given.`,
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE:    runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config")
}

func runInit(cmd *cobra.Command, args []string) error {
	written, err := writeDefaultConfig(getBaseDir(), initForce)
	if err != nil {
		return err
	}
	path := config.Path(getBaseDir())
	if !written {
		output.Warning("%s already exists (use --force to overwrite)", path)
		return nil
	}
	output.Success("wrote %s", path)
	return nil
}

// writeDefaultConfig saves config.Default under baseDir. It reports false
// when a config already exists and force is not set.
func writeDefaultConfig(baseDir string, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(config.Path(baseDir)); err == nil {
			return false, nil
		} else if !os.IsNotExist(err) {
			return false, fmt.Errorf("stat config: %w", err)
		}
	}
	if err := config.Save(baseDir, config.Default()); err != nil {
		return false, err
	}
	return true, nil
}
