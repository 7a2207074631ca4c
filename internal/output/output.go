// Package output renders command results for the terminal or as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// Colors for status indicators
var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// DisableColors turns off color output (for non-TTY or JSON mode)
func DisableColors() {
	color.NoColor = true
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// RenderJSON writes v as indented JSON
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderError writes a failed command's message
func RenderError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", red("Error:"), err)
}

// Progress prints one dot per unconfirmed poll
type Progress struct {
	w    io.Writer
	dots int
}

// NewProgress creates a Progress writing to w
func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w}
}

// Tick matches the confirmation loop's per-attempt callback
func (p *Progress) Tick(attempt int) {
	p.dots++
	fmt.Fprint(p.w, ".")
}

// Done ends the line of dots, if any were printed
func (p *Progress) Done() {
	if p.dots > 0 {
		fmt.Fprintln(p.w)
	}
}

func newTable(w io.Writer, columns ...interface{}) table.Table {
	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	return table.New(columns...).WithHeaderFormatter(headerFmt).WithWriter(w)
}
