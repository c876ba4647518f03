// Package navigator tracks which granularity the picker displays and which
// calendar unit the visible page is anchored on. The focused unit is the
// single source of truth; every page index is derived from it on demand.
package navigator

import (
	"fmt"
	"time"

	"tableflip.dev/datepick/pkg/civil"
)

// Granularity is the calendar unit the grid currently displays. The values
// form a strict drill hierarchy: Day < Month < Year.
type Granularity int

const (
	Day Granularity = iota
	Month
	Year
)

func (g Granularity) String() string {
	switch g {
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return fmt.Sprintf("Granularity(%d)", int(g))
}

// Navigator is the view-mode state machine.
type Navigator struct {
	granularity Granularity
	focus       civil.Date
	span        civil.Span
}

// New returns a Navigator at Day granularity focused on the given date. A
// focus outside span is clamped to the nearest span edge.
func New(span civil.Span, focus civil.Date) *Navigator {
	return &Navigator{
		granularity: Day,
		focus:       clamp(span, focus),
		span:        span,
	}
}

func clamp(span civil.Span, d civil.Date) civil.Date {
	if d.Year < span.MinYear {
		return civil.NewDate(span.MinYear, time.January, 1)
	}
	if d.Year > span.MaxYear {
		return civil.NewDate(span.MaxYear, time.December, 1)
	}
	return d
}

// Granularity returns the current view granularity.
func (n *Navigator) Granularity() Granularity { return n.granularity }

// Focus returns the focused calendar unit.
func (n *Navigator) Focus() civil.Date { return n.focus }

// Span returns the bounded year span.
func (n *Navigator) Span() civil.Span { return n.span }

// DrillUp coarsens the view one level. Day moves to Month with focus reset
// to January 1 of the focused year; Month moves to Year with focus reset to
// the start of the focused year's decade. Year has no further ascent and
// reports false.
func (n *Navigator) DrillUp() bool {
	switch n.granularity {
	case Day:
		n.granularity = Month
		n.focus = civil.FirstOfYear(n.focus)
	case Month:
		n.granularity = Year
		start := civil.DecadeStart(n.focus.Year)
		if start < n.span.MinYear {
			start = n.span.MinYear
		}
		n.focus = civil.NewDate(start, time.January, 1)
	default:
		return false
	}
	return true
}

// DrillDown refines the view one level toward the tapped unit: Year focuses
// the tapped year at Month granularity, Month focuses the tapped month at
// Day granularity. At Day granularity a cell tap is a pick, not a drill, so
// DrillDown reports false. Units outside the span are rejected.
func (n *Navigator) DrillDown(unit civil.Date) bool {
	if !n.span.ContainsDate(unit) {
		return false
	}
	switch n.granularity {
	case Year:
		n.granularity = Month
		n.focus = civil.FirstOfYear(unit)
	case Month:
		n.granularity = Day
		n.focus = civil.FirstOfMonth(unit)
	default:
		return false
	}
	return true
}

// PageSwiped updates the focus from a settled page index on one of the
// three tracks without changing granularity. Indices outside the track are
// rejected.
func (n *Navigator) PageSwiped(g Granularity, page int) bool {
	if page < 0 {
		return false
	}
	switch g {
	case Day:
		if page >= n.span.DayPages() {
			return false
		}
		start := n.span.DayPageStart(page)
		n.focus = civil.NewDate(start.Year, start.Month, 1)
	case Month:
		if page >= n.span.MonthPages() {
			return false
		}
		n.focus = civil.NewDate(n.span.MonthPageYear(page), time.January, 1)
	case Year:
		if page >= n.span.YearPages() {
			return false
		}
		n.focus = civil.NewDate(n.span.YearPageStart(page), time.January, 1)
	default:
		return false
	}
	return true
}

// Step moves the focus by delta pages on the current granularity's track,
// clamping at the span edges. It reports whether the focus moved.
func (n *Navigator) Step(delta int) bool {
	page := n.Page() + delta
	total := n.pages()
	if page < 0 {
		page = 0
	}
	if page >= total {
		page = total - 1
	}
	if page == n.Page() {
		return false
	}
	return n.PageSwiped(n.granularity, page)
}

// Page returns the focused page index on the current granularity's track.
func (n *Navigator) Page() int {
	switch n.granularity {
	case Month:
		return n.span.MonthPage(n.focus)
	case Year:
		return n.span.YearPage(n.focus)
	default:
		return n.span.DayPage(n.focus)
	}
}

func (n *Navigator) pages() int {
	switch n.granularity {
	case Month:
		return n.span.MonthPages()
	case Year:
		return n.span.YearPages()
	default:
		return n.span.DayPages()
	}
}

// Title returns the header label for the focused page: "July 2024" at Day
// granularity, "2024" at Month, "1900 – 1909" at Year.
func (n *Navigator) Title() string {
	switch n.granularity {
	case Month:
		return fmt.Sprintf("%d", n.focus.Year)
	case Year:
		start := n.span.YearPageStart(n.span.YearPage(n.focus))
		return fmt.Sprintf("%d – %d", start, start+9)
	default:
		return fmt.Sprintf("%s %d", n.focus.Month, n.focus.Year)
	}
}
