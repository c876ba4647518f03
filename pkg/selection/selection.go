// Package selection holds the picker's selection state: a single date or a
// pair of range bounds, mutated one tap at a time.
package selection

import (
	"fmt"

	"tableflip.dev/datepick/pkg/civil"
)

// Mode determines how taps mutate the selection. It is fixed when the model
// is constructed.
type Mode int

const (
	// Single keeps exactly one selected date.
	Single Mode = iota
	// Range accumulates a start and an end bound.
	Range
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Range:
		return "range"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "single" or "range".
func ParseMode(val string) (Mode, error) {
	switch val {
	case "single", "":
		return Single, nil
	case "range":
		return Range, nil
	}
	return Single, fmt.Errorf("invalid selection mode: %q", val)
}

// DateRange is an inclusive pair of bounds with Start <= End.
type DateRange struct {
	Start civil.Date
	End   civil.Date
}

// Result reports what an Apply call completed. At most one field is set: a
// swallowed tap (out of span, or the opening tap of a range) sets neither.
type Result struct {
	Picked *civil.Date
	Range  *DateRange
}

// Model is the selection state machine.
type Model struct {
	mode Mode
	span civil.Span

	single *civil.Date
	start  *civil.Date
	end    *civil.Date
}

// New returns an empty model for the given mode, accepting dates inside span.
func New(mode Mode, span civil.Span) *Model {
	return &Model{mode: mode, span: span}
}

// Mode returns the model's fixed selection mode.
func (m *Model) Mode() Mode { return m.mode }

// SetInitialSingle seeds a single-date selection; nil clears it. Dates
// outside the span are treated as absent.
func (m *Model) SetInitialSingle(d *civil.Date) {
	m.single, m.start, m.end = nil, nil, nil
	if d != nil && m.span.ContainsDate(*d) {
		v := *d
		m.single = &v
	}
}

// SetInitialRange seeds range bounds; either may be nil. Bounds supplied in
// the wrong order are swapped rather than rejected.
func (m *Model) SetInitialRange(start, end *civil.Date) {
	m.single, m.start, m.end = nil, nil, nil
	if start != nil && !m.span.ContainsDate(*start) {
		start = nil
	}
	if end != nil && !m.span.ContainsDate(*end) {
		end = nil
	}
	if start == nil && end != nil {
		start, end = end, nil
	}
	if start != nil && end != nil && end.Before(*start) {
		start, end = end, start
	}
	if start != nil {
		v := *start
		m.start = &v
	}
	if end != nil {
		v := *end
		m.end = &v
	}
}

// Apply records one tapped date and reports any completed pick. Taps outside
// the span are ignored and leave the state untouched.
func (m *Model) Apply(d civil.Date) Result {
	if !m.span.ContainsDate(d) {
		return Result{}
	}

	if m.mode == Single {
		v := d
		m.single = &v
		return Result{Picked: &v}
	}

	switch {
	case m.start == nil, m.end != nil:
		// Opening tap, or a tap after a completed range: begin fresh.
		v := d
		m.start, m.end = &v, nil
		return Result{}
	case d.Before(*m.start):
		// Tapped before the pending start: the tap becomes the start and
		// the old start closes the range.
		v := d
		m.start, m.end = &v, m.start
	default:
		v := d
		m.end = &v
	}
	return Result{Range: &DateRange{Start: *m.start, End: *m.end}}
}

// Single returns the selected date in Single mode, if any.
func (m *Model) Single() *civil.Date {
	if m.single == nil {
		return nil
	}
	v := *m.single
	return &v
}

// Bounds returns the current range bounds; either may be nil.
func (m *Model) Bounds() (start, end *civil.Date) {
	if m.start != nil {
		v := *m.start
		start = &v
	}
	if m.end != nil {
		v := *m.end
		end = &v
	}
	return start, end
}

// IsSingle reports whether d is the selected single date.
func (m *Model) IsSingle(d civil.Date) bool {
	return m.single != nil && civil.SameDay(*m.single, d)
}

// IsRangeStart reports whether d is the range's start bound.
func (m *Model) IsRangeStart(d civil.Date) bool {
	return m.start != nil && civil.SameDay(*m.start, d)
}

// IsRangeEnd reports whether d is the range's end bound. A lone start bound
// doubles as the end so a half-finished range still highlights itself.
func (m *Model) IsRangeEnd(d civil.Date) bool {
	end := m.effectiveEnd()
	return end != nil && civil.SameDay(*end, d)
}

// InRange reports whether d falls inclusively between the bounds. The check
// is on-or-after start AND on-or-before end, with a lone start standing in
// for a missing end.
func (m *Model) InRange(d civil.Date) bool {
	if m.start == nil {
		return false
	}
	end := m.effectiveEnd()
	return !d.Before(*m.start) && !d.After(*end)
}

// OverlapsRange reports whether the period [periodStart, periodEnd]
// intersects the selected range, non-strictly at both edges. Month and year
// cells use this instead of the day-level containment check.
func (m *Model) OverlapsRange(periodStart, periodEnd civil.Date) bool {
	if m.start == nil {
		return false
	}
	end := m.effectiveEnd()
	return !periodEnd.Before(*m.start) && !periodStart.After(*end)
}

// RangeStartIn reports whether the range's start bound falls inside the
// period.
func (m *Model) RangeStartIn(periodStart, periodEnd civil.Date) bool {
	return m.start != nil && !m.start.Before(periodStart) && !m.start.After(periodEnd)
}

// RangeEndIn reports whether the range's (effective) end bound falls inside
// the period.
func (m *Model) RangeEndIn(periodStart, periodEnd civil.Date) bool {
	end := m.effectiveEnd()
	return end != nil && !end.Before(periodStart) && !end.After(periodEnd)
}

// SingleIn reports whether the single selection falls inside the period.
func (m *Model) SingleIn(periodStart, periodEnd civil.Date) bool {
	return m.single != nil && !m.single.Before(periodStart) && !m.single.After(periodEnd)
}

func (m *Model) effectiveEnd() *civil.Date {
	if m.end != nil {
		return m.end
	}
	return m.start
}
