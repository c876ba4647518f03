// Package printers renders picker pages on a plain terminal, for the
// non-interactive subcommands.
package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/datepick/pkg/grid"
	"tableflip.dev/datepick/pkg/navigator"
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// PrettyPrint writes styled pages to stdout.
type PrettyPrint struct {
	// Marked flags the cells that carry a stored mark; keyed by the cell's
	// date string.
	Marked map[string]bool
}

const weekWidth = len("Su Mo Tu We Th Fr Sa")

// Title prints the page header centered over the grid.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	pad := (weekWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	_, _ = t.Printf("%s%s\n", strings.Repeat(" ", pad), title)
}

// Page prints the cells of one picker page at the given granularity.
func (pp *PrettyPrint) Page(g navigator.Granularity, cells []grid.Cell) {
	switch g {
	case navigator.Day:
		pp.days(cells)
	case navigator.Month:
		pp.units(cells, 4)
	case navigator.Year:
		pp.units(cells, 5)
	}
}

func (pp *PrettyPrint) days(cells []grid.Cell) {
	h := color.New(color.Faint)
	_, _ = h.Println("Su Mo Tu We Th Fr Sa")

	for i, c := range cells {
		_, _ = pp.printer(c).Printf("%2s", c.Label)
		if (i+1)%7 == 0 {
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}
}

func (pp *PrettyPrint) units(cells []grid.Cell, width int) {
	perRow := 4
	for i, c := range cells {
		_, _ = pp.printer(c).Printf("%*s", width, c.Label)
		if (i+1)%perRow == 0 || i == len(cells)-1 {
			fmt.Println()
		} else {
			fmt.Print("  ")
		}
	}
}

// printer picks the style for one cell: faint for out-of-month padding,
// reversed for selection, bold for today, underline for marked days.
func (pp *PrettyPrint) printer(c grid.Cell) *color.Color {
	p := color.New()
	if !c.IsCurrentPeriod {
		p = color.New(color.Faint)
	}
	if pp.Marked[c.Date.String()] {
		p.Add(color.Underline)
	}
	if c.IsToday {
		p.Add(color.Bold)
	}
	if c.IsInRange || c.IsSelected {
		p.Add(color.ReverseVideo)
	}
	return p
}
