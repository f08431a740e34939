package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/marcus/timesheet/pkg/monitor"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var keysCmd = &cobra.Command{
	Use:   "keys [FILTER]",
	Short: "List the picker key bindings",
	Long: `List the picker's key bindings as a table. An optional FILTER fuzzy-matches
against the binding descriptions, so "min" finds both minute controls.`,
	GroupID: "system",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runKeys,
}

var keysRaw bool

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().BoolVar(&keysRaw, "raw", false, "Print markdown without rendering")
}

func runKeys(cmd *cobra.Command, args []string) error {
	bindings := monitor.DefaultKeyMap().All()
	if len(args) == 1 {
		bindings = filterBindings(bindings, args[0])
		if len(bindings) == 0 {
			return fmt.Errorf("no key binding matches %q", args[0])
		}
	}
	md := keysMarkdown(bindings)

	out := cmd.OutOrStdout()
	if keysRaw || !term.IsTerminal(int(os.Stdout.Fd())) {
		_, err := fmt.Fprint(out, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

// filterBindings keeps the bindings whose description fuzzy-matches pattern,
// best match first.
func filterBindings(bindings []key.Binding, pattern string) []key.Binding {
	descs := make([]string, len(bindings))
	for i, b := range bindings {
		descs[i] = b.Help().Desc
	}
	matches := fuzzy.Find(pattern, descs)
	out := make([]key.Binding, 0, len(matches))
	for _, m := range matches {
		out = append(out, bindings[m.Index])
	}
	return out
}

func keysMarkdown(bindings []key.Binding) string {
	var sb strings.Builder
	sb.WriteString("# Picker keys\n\n")
	sb.WriteString("| Key | Keys accepted | Action |\n")
	sb.WriteString("|-----|---------------|--------|\n")
	for _, b := range bindings {
		h := b.Help()
		keys := make([]string, 0, len(b.Keys()))
		for _, k := range b.Keys() {
			if k == " " {
				k = "space"
			}
			keys = append(keys, "`"+k+"`")
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", escapePipe(h.Key), strings.Join(keys, " "), h.Desc)
	}
	return sb.String()
}

func escapePipe(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
