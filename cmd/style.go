package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors of the interactive output.
var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// printError writes a single line message in the error style.
func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// printSuccess writes a single line message in the success style.
func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}
