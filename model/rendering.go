package model

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer draws the grid as plain text, two columns per cell.
type TerminalRenderer struct {
	out *bufio.Writer
}

// NewTerminalRenderer returns a renderer writing to w, or stdout when w is nil.
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalRenderer{out: bufio.NewWriter(w)}
}

// Display renders the grid straight from its packed words.
func (r *TerminalRenderer) Display(g *Grid) error {
	words := g.Cells()
	for i := range g.Len() {
		if isSet(words, i) {
			r.out.WriteString(gridPosBlock)
		} else {
			r.out.WriteString(gridPosEmpty)
		}
		if (i+1)%g.width == 0 {
			r.out.WriteByte('\n')
		}
	}
	return errors.Wrap(r.out.Flush(), "[Display] failed to flush grid")
}

// Printf writes a status line below or above the grid.
func (r *TerminalRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	r.out.WriteString(ansiClear)
	return errors.Wrap(r.out.Flush(), "[Clear] failed to clear terminal")
}
