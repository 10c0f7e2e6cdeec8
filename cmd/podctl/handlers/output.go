package handlers

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
	failureStyle = lipgloss.NewStyle().Foreground(colorRed)
	warningStyle = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// useStyles is replaceable in tests.
var useStyles = isInteractiveTTY

// isInteractiveTTY returns true if stdout is attached to a terminal.
func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// render applies style only when writing to a terminal.
func render(style lipgloss.Style, s string) string {
	if !useStyles() {
		return s
	}
	return style.Render(s)
}

func printTitle(s string) {
	fmt.Println(render(titleStyle, s))
}

func printSuccess(format string, a ...any) {
	fmt.Println(render(successStyle, "✅ "+fmt.Sprintf(format, a...)))
}

func printFailure(format string, a ...any) {
	fmt.Println(render(failureStyle, "❌ "+fmt.Sprintf(format, a...)))
}

func printWarning(format string, a ...any) {
	fmt.Println(render(warningStyle, "⚠️  "+fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Printf("  %s %s\n", render(dimStyle, fmt.Sprintf("%-15s", label+":")), value)
}
