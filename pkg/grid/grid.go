// Package grid turns a page of the calendar into the ordered cell
// descriptors a rendering layer draws. Build is a pure function: the same
// page, selection and reference date always produce the same cells.
package grid

import (
	"strconv"
	"time"

	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/navigator"
	"tableflip.dev/datepick/pkg/selection"
)

// Cell describes one grid cell semantically; rendering decides how each
// flag looks.
type Cell struct {
	// Label is the displayed text: a day number, a month abbreviation, or a
	// year.
	Label string

	// Date identifies the cell's period: the day itself, the first of the
	// month, or January 1 of the year.
	Date civil.Date

	// IsCurrentPeriod is false for the leading/trailing out-of-month cells
	// on a day page. Month and year pages only show their own period.
	IsCurrentPeriod bool

	IsToday      bool
	IsSelected   bool
	IsRangeStart bool
	IsRangeEnd   bool
	IsInRange    bool
}

// Build produces the cells for one page at the given granularity: 7×N day
// cells for a month page, twelve month cells for a year page, ten year
// cells for a decade page. The page index must lie inside the span's track.
func Build(g navigator.Granularity, page int, sel *selection.Model, today civil.Date, span civil.Span) []Cell {
	switch g {
	case navigator.Month:
		return buildMonths(page, sel, today, span)
	case navigator.Year:
		return buildYears(page, sel, today, span)
	default:
		return buildDays(page, sel, today, span)
	}
}

func buildDays(page int, sel *selection.Model, today civil.Date, span civil.Span) []Cell {
	start := span.DayPageStart(page)
	dates := civil.MonthGrid(start.Year, start.Month)

	cells := make([]Cell, 0, len(dates))
	for _, d := range dates {
		c := describe(d, d, sel, today)
		c.Label = strconv.Itoa(d.Day)
		c.IsCurrentPeriod = civil.SameMonth(d, start)
		// The day-level range check is containment, not period overlap; the
		// two agree on single-day periods but only the former is the
		// documented day-grid behavior.
		c.IsInRange = sel.InRange(d)
		cells = append(cells, c)
	}
	return cells
}

func buildMonths(page int, sel *selection.Model, today civil.Date, span civil.Span) []Cell {
	year := span.MonthPageYear(page)

	cells := make([]Cell, 0, 12)
	for m := time.January; m <= time.December; m++ {
		first := civil.NewDate(year, m, 1)
		last := civil.NewDate(year, m, civil.DaysIn(year, m))
		c := describe(first, last, sel, today)
		c.Label = first.Month.String()[:3]
		c.IsCurrentPeriod = true
		cells = append(cells, c)
	}
	return cells
}

func buildYears(page int, sel *selection.Model, today civil.Date, span civil.Span) []Cell {
	start := span.YearPageStart(page)

	cells := make([]Cell, 0, 10)
	for y := start; y < start+10; y++ {
		first := civil.NewDate(y, time.January, 1)
		last := civil.NewDate(y, time.December, 31)
		c := describe(first, last, sel, today)
		c.Label = strconv.Itoa(y)
		c.IsCurrentPeriod = true
		cells = append(cells, c)
	}
	return cells
}

// describe computes the selection and today flags for a period spanning
// [first, last]. Day cells pass first == last; month and year cells pass
// their whole period, so one computation serves every granularity.
func describe(first, last civil.Date, sel *selection.Model, today civil.Date) Cell {
	return Cell{
		Date:         first,
		IsToday:      !today.Before(first) && !today.After(last),
		IsSelected:   sel.SingleIn(first, last),
		IsRangeStart: sel.RangeStartIn(first, last),
		IsRangeEnd:   sel.RangeEndIn(first, last),
		IsInRange:    sel.OverlapsRange(first, last),
	}
}
