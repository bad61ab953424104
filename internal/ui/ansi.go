package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Status lines go to these writers; tests swap them out.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func OK(msg string)   { fmt.Fprintln(Stdout, current.Success.Render(current.SymOK+" "+msg)) }
func Info(msg string) { fmt.Fprintln(Stdout, current.Warn.Render(current.SymInfo+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Stderr, current.Error.Render(current.SymFail+" "+msg)) }

// Hint prints a muted follow-up line under a failure.
func Hint(msg string) { fmt.Fprintln(Stderr, current.Muted.Render(msg)) }
