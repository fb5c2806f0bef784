package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// Render formats the grid one row per line using one glyph per cell
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow((len(glyphAlive)*g.width + 1) * g.height)
	for row := 0; row < g.height; row++ {
		for _, c := range g.cells[g.Index(row, 0):g.Index(row+1, 0)] {
			b.WriteString(c.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) String() string {
	return g.Render()
}

// TerminalRenderer draws the grid as coloured blocks
type TerminalRenderer struct {
	Out io.Writer
	au  aurora.Aurora
}

// NewTerminalRenderer returns a renderer writing to out (stdout when nil);
// colours are disabled when colors is false
func NewTerminalRenderer(out io.Writer, colors bool) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{Out: out, au: aurora.NewAurora(colors)}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) error {
	alive := r.au.Magenta(gridPosBlock).BgBrightMagenta().String()

	var b strings.Builder
	for row := 0; row < g.height; row++ {
		for column := 0; column < g.width; column++ {
			if g.cells[g.Index(row, column)].IsAlive() {
				b.WriteString(alive)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.Out, b.String())
	return err
}

// Status writes a one-line summary
func (r *TerminalRenderer) Status(format string, args ...interface{}) {
	fmt.Fprintln(r.Out, r.au.Cyan(fmt.Sprintf(format, args...)).String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	return cmd.Run()
}
