// Package report prints user-facing messages and errors.
package report

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
)

func Error(err error) {
	pterm.Error.Println(err)
}

// Fatal reports an error from within the TUI and quits the program.
func Fatal(err error) tea.Cmd {
	pterm.Error.Println(err)
	return tea.Quit
}

// Quit reports an error and exits immediately.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
