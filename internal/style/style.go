// Package style holds terminal detection and the few styled lines the CLI
// prints around its data output.
package style

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var (
	bold      = color.New(color.Bold).SprintFunc()
	titleText = color.New(color.Bold, color.Underline).SprintFunc()
	okText    = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Title prints a bold, underlined title line.
func Title(w io.Writer, msg string) {
	fmt.Fprintln(w, titleText(msg))
}

// OK prints a green success line.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, okText(msg))
}

// Status prints the HTTP status line, e.g. "Status: 200 OK".
func Status(w io.Writer, status string) {
	fmt.Fprintf(w, "%s %s\n", bold("Status:"), okText(status))
}
