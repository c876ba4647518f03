// Package picker is the embeddable date-picking engine. It owns the
// selection model, the view navigator and the page synchronizer, and turns
// raw tap and swipe events into normalized pick callbacks and grid cells.
//
// The engine is synchronous and single-owner: every input is one state
// transition, and the state is consistent before any page move it requests
// is carried out.
package picker

import (
	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/grid"
	"tableflip.dev/datepick/pkg/navigator"
	"tableflip.dev/datepick/pkg/selection"
)

// Options configures a Picker.
type Options struct {
	Mode selection.Mode

	// Span bounds the years the picker pages through. Zero means the
	// default 1900–2100 span.
	Span civil.Span

	// Today anchors the initial focus and the is-today flag. Zero means the
	// current local date.
	Today civil.Date

	// Initial selection; reversed range bounds are swapped, out-of-span
	// values dropped.
	InitialSingle *civil.Date
	InitialStart  *civil.Date
	InitialEnd    *civil.Date

	// OnPick fires once per completed single-date selection.
	OnPick func(civil.Date)
	// OnRangePick fires once per completed range, start <= end.
	OnRangePick func(selection.DateRange)
}

// Picker wires the engine together.
type Picker struct {
	opts  Options
	today civil.Date

	sel  *selection.Model
	nav  *navigator.Navigator
	sync *navigator.Synchronizer
}

// New constructs a Picker at Day granularity, focused on today or on the
// initial selection's start when one is supplied.
func New(opts Options) *Picker {
	if opts.Span == (civil.Span{}) {
		opts.Span = civil.DefaultSpan()
	}
	if opts.Today.IsZero() {
		opts.Today = civil.Today()
	}

	sel := selection.New(opts.Mode, opts.Span)
	focus := opts.Today
	switch opts.Mode {
	case selection.Single:
		sel.SetInitialSingle(opts.InitialSingle)
		if d := sel.Single(); d != nil {
			focus = *d
		}
	case selection.Range:
		sel.SetInitialRange(opts.InitialStart, opts.InitialEnd)
		if start, _ := sel.Bounds(); start != nil {
			focus = *start
		}
	}

	nav := navigator.New(opts.Span, focus)
	return &Picker{
		opts:  opts,
		today: opts.Today,
		sel:   sel,
		nav:   nav,
		sync:  navigator.NewSynchronizer(nav),
	}
}

// Granularity returns the current view granularity.
func (p *Picker) Granularity() navigator.Granularity { return p.nav.Granularity() }

// Focus returns the focused calendar unit.
func (p *Picker) Focus() civil.Date { return p.nav.Focus() }

// Span returns the bounded year span.
func (p *Picker) Span() civil.Span { return p.nav.Span() }

// Selection exposes the selection model for predicate queries.
func (p *Picker) Selection() *selection.Model { return p.sel }

// Today returns the engine's reference date.
func (p *Picker) Today() civil.Date { return p.today }

// Title returns the header label for the focused page.
func (p *Picker) Title() string { return p.nav.Title() }

// Page returns the focused page index on the current granularity's track.
func (p *Picker) Page() int { return p.nav.Page() }

// PageCount returns the number of pages on the current granularity's track.
func (p *Picker) PageCount() int {
	switch p.nav.Granularity() {
	case navigator.Month:
		return p.Span().MonthPages()
	case navigator.Year:
		return p.Span().YearPages()
	default:
		return p.Span().DayPages()
	}
}

// Cells returns the cell descriptors for one page of the current
// granularity's track.
func (p *Picker) Cells(page int) []grid.Cell {
	return grid.Build(p.nav.Granularity(), page, p.sel, p.today, p.Span())
}

// CurrentCells returns the cells for the focused page.
func (p *Picker) CurrentCells() []grid.Cell {
	return p.Cells(p.Page())
}

// TapCell handles a tap on a grid cell. At Day granularity it is a pick and
// may fire a callback; at Month and Year it drills down to the tapped unit.
// Out-of-span cells are ignored. The returned moves realign the paging
// tracks.
func (p *Picker) TapCell(unit civil.Date) []navigator.Move {
	if p.nav.Granularity() == navigator.Day {
		res := p.sel.Apply(unit)
		if res.Picked != nil && p.opts.OnPick != nil {
			p.opts.OnPick(*res.Picked)
		}
		if res.Range != nil && p.opts.OnRangePick != nil {
			p.opts.OnRangePick(*res.Range)
		}
		return nil
	}
	if !p.nav.DrillDown(unit) {
		return nil
	}
	return p.sync.Sync(p.nav, navigator.TransitionSnap)
}

// TapHeader drills up one granularity. At Year granularity it is a no-op.
func (p *Picker) TapHeader() []navigator.Move {
	if !p.nav.DrillUp() {
		return nil
	}
	return p.sync.Sync(p.nav, navigator.TransitionSnap)
}

// TapPrevArrow moves one page back on the current track, animated.
func (p *Picker) TapPrevArrow() []navigator.Move {
	return p.step(-1)
}

// TapNextArrow moves one page forward on the current track, animated.
func (p *Picker) TapNextArrow() []navigator.Move {
	return p.step(1)
}

func (p *Picker) step(delta int) []navigator.Move {
	if !p.nav.Step(delta) {
		return nil
	}
	return p.sync.Sync(p.nav, navigator.TransitionAnimate)
}

// PageSettled records that a swipe finished on the given page of one track.
// The focus follows the page; the settled track itself needs no further
// transition, while stale sibling tracks snap.
func (p *Picker) PageSettled(g navigator.Granularity, page int) []navigator.Move {
	if !p.nav.PageSwiped(g, page) {
		return nil
	}
	return p.sync.Sync(p.nav, navigator.TransitionNone)
}
