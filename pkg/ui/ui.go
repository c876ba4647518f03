// Package ui is the legacy full-screen picker built on tui-go. The Bubble
// Tea app in pkg/tui supersedes it; it stays for hosts still on the old
// stack.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/grid"
	"tableflip.dev/datepick/pkg/navigator"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/selection"
)

// UI drives the classic picker screen.
type UI struct {
	Mode selection.Mode
	Span civil.Span

	engine *picker.Picker
	cursor int

	title *tui.Label
	grid  *tui.Label
	view  *tui.Box

	status *tui.StatusBar
}

func (d *UI) Do(ctx context.Context) error {
	opts := picker.Options{Mode: d.Mode}
	if d.Span != (civil.Span{}) {
		opts.Span = d.Span
	}
	opts.OnPick = func(date civil.Date) {
		d.status.SetText(fmt.Sprintf("picked %s", date))
	}
	opts.OnRangePick = func(r selection.DateRange) {
		d.status.SetText(fmt.Sprintf("picked %s – %s", r.Start, r.End))
	}
	d.engine = picker.New(opts)

	d.title = tui.NewLabel("")
	d.grid = tui.NewLabel("")

	d.view = tui.NewVBox(d.title, d.grid, tui.NewSpacer())
	d.view.SetBorder(true)

	d.status = tui.NewStatusBar("")
	d.status.SetPermanentText(`arrows move, enter picks, 'u' drills up, 'q' to QUIT`)

	root := tui.NewVBox(
		tui.NewHBox(d.view, tui.NewSpacer()),
		tui.NewSpacer(),
		d.status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	d.seedCursor()
	d.redraw()

	ui.SetKeybinding("Left", func() { d.move(-1) })
	ui.SetKeybinding("Right", func() { d.move(1) })
	ui.SetKeybinding("Up", func() { d.move(-d.columns()) })
	ui.SetKeybinding("Down", func() { d.move(d.columns()) })
	ui.SetKeybinding("Enter", func() { d.tap() })
	ui.SetKeybinding("u", func() { d.drillUp() })
	ui.SetKeybinding("[", func() { d.page(-1) })
	ui.SetKeybinding("]", func() { d.page(1) })

	ui.SetKeybinding("Esc", func() { ui.Quit() })
	ui.SetKeybinding("q", func() { ui.Quit() })

	if err := ui.Run(); err != nil {
		return err
	}
	return nil
}

func (d *UI) columns() int {
	switch d.engine.Granularity() {
	case navigator.Month:
		return 4
	case navigator.Year:
		return 5
	default:
		return 7
	}
}

func (d *UI) cells() []grid.Cell {
	return d.engine.CurrentCells()
}

func (d *UI) seedCursor() {
	for i, c := range d.cells() {
		if c.IsToday || c.IsSelected || c.IsRangeStart {
			d.cursor = i
			return
		}
	}
	d.cursor = 0
}

func (d *UI) move(delta int) {
	next := d.cursor + delta
	cells := d.cells()
	if next < 0 || next >= len(cells) {
		return
	}
	d.cursor = next
	d.redraw()
}

func (d *UI) tap() {
	cells := d.cells()
	if d.cursor >= len(cells) {
		return
	}
	before := d.engine.Granularity()
	d.engine.TapCell(cells[d.cursor].Date)
	if d.engine.Granularity() != before {
		d.seedCursor()
	}
	d.redraw()
}

func (d *UI) drillUp() {
	d.engine.TapHeader()
	d.seedCursor()
	d.redraw()
}

func (d *UI) page(dir int) {
	if dir < 0 {
		d.engine.TapPrevArrow()
	} else {
		d.engine.TapNextArrow()
	}
	if n := len(d.cells()); d.cursor >= n {
		d.cursor = n - 1
	}
	d.redraw()
}

func (d *UI) redraw() {
	d.title.SetText(d.engine.Title())
	d.grid.SetText(d.render())
}

// render draws the grid as plain text; tui-go labels carry no styling, so
// the cursor and selection are shown with bracket and asterisk markers.
func (d *UI) render() string {
	cells := d.cells()
	cols := d.columns()

	var b strings.Builder
	if d.engine.Granularity() == navigator.Day {
		b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")
	}
	for i, c := range cells {
		open, close := " ", " "
		switch {
		case i == d.cursor:
			open, close = "[", "]"
		case c.IsSelected || c.IsRangeStart || c.IsRangeEnd:
			open, close = "*", "*"
		case c.IsInRange:
			open, close = "·", "·"
		}
		fmt.Fprintf(&b, "%s%2s%s", open, c.Label, close)
		if (i+1)%cols == 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
