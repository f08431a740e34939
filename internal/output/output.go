// Package output prints status lines for CLI commands.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Writers used by the helpers. Tests swap these out.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Error prints an error line to stderr
func Error(format string, args ...any) {
	fmt.Fprintln(Stderr, errorStyle.Render("ERROR")+" "+fmt.Sprintf(format, args...))
}

// Warning prints a warning line to stderr
func Warning(format string, args ...any) {
	fmt.Fprintln(Stderr, warningStyle.Render("WARNING")+" "+fmt.Sprintf(format, args...))
}

// Success prints a confirmation line to stdout
func Success(format string, args ...any) {
	fmt.Fprintln(Stdout, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Muted prints secondary information to stdout
func Muted(format string, args ...any) {
	fmt.Fprintln(Stdout, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Plain prints an unstyled line to stdout, for values other programs read
func Plain(format string, args ...any) {
	fmt.Fprintf(Stdout, format+"\n", args...)
}
