package selection

import (
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/civil"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.NewDate(y, m, d)
}

func TestSingleModeReplacesUnconditionally(t *testing.T) {
	m := New(Single, civil.DefaultSpan())

	r := m.Apply(date(2024, time.June, 15))
	if r.Picked == nil || !civil.SameDay(*r.Picked, date(2024, time.June, 15)) {
		t.Fatalf("first pick result = %+v", r)
	}

	r = m.Apply(date(2024, time.June, 10))
	if r.Picked == nil || !civil.SameDay(*r.Picked, date(2024, time.June, 10)) {
		t.Fatalf("second pick result = %+v", r)
	}
	if !m.IsSingle(date(2024, time.June, 10)) || m.IsSingle(date(2024, time.June, 15)) {
		t.Fatal("single selection did not replace")
	}
}

func TestRangeSwapOnEarlierSecondTap(t *testing.T) {
	m := New(Range, civil.DefaultSpan())

	if r := m.Apply(date(2024, time.June, 15)); r.Picked != nil || r.Range != nil {
		t.Fatalf("opening tap emitted %+v", r)
	}
	start, end := m.Bounds()
	if start == nil || end != nil {
		t.Fatalf("after opening tap: start=%v end=%v", start, end)
	}

	r := m.Apply(date(2024, time.June, 10))
	if r.Range == nil {
		t.Fatal("second tap did not complete the range")
	}
	want := DateRange{Start: date(2024, time.June, 10), End: date(2024, time.June, 15)}
	if *r.Range != want {
		t.Fatalf("range = %+v, want %+v", *r.Range, want)
	}
}

func TestThreeTapCycleStartsFresh(t *testing.T) {
	m := New(Range, civil.DefaultSpan())

	a := date(2024, time.June, 20)
	b := date(2024, time.June, 5)
	c := date(2024, time.July, 1)

	m.Apply(a)
	if r := m.Apply(b); r.Range == nil || r.Range.Start != b || r.Range.End != a {
		t.Fatalf("taps A then B(<A) gave %+v", r)
	}

	// A third tap never extends: it opens a new range.
	if r := m.Apply(c); r.Range != nil || r.Picked != nil {
		t.Fatalf("third tap emitted %+v", r)
	}
	start, end := m.Bounds()
	if start == nil || *start != c || end != nil {
		t.Fatalf("after third tap: start=%v end=%v", start, end)
	}
}

func TestRangeOrderingInvariant(t *testing.T) {
	m := New(Range, civil.DefaultSpan())
	taps := []civil.Date{
		date(2024, time.June, 15),
		date(2024, time.June, 10),
		date(2024, time.May, 1),
		date(2024, time.April, 1),
		date(2024, time.December, 31),
		date(2023, time.January, 2),
	}
	for _, d := range taps {
		m.Apply(d)
		start, end := m.Bounds()
		if start != nil && end != nil && end.Before(*start) {
			t.Fatalf("invariant violated after tap %v: start=%v end=%v", d, start, end)
		}
	}
}

func TestOneDayRange(t *testing.T) {
	m := New(Range, civil.DefaultSpan())
	d := date(2024, time.June, 15)

	m.Apply(d)
	r := m.Apply(d)
	if r.Range == nil || r.Range.Start != d || r.Range.End != d {
		t.Fatalf("double tap on one day gave %+v", r)
	}
	if !m.InRange(d) || !m.IsRangeStart(d) || !m.IsRangeEnd(d) {
		t.Fatal("one-day range predicates disagree")
	}
}

func TestLoneStartHighlightsItself(t *testing.T) {
	m := New(Range, civil.DefaultSpan())
	d := date(2024, time.June, 15)
	m.Apply(d)

	if !m.InRange(d) {
		t.Fatal("lone start is not in range")
	}
	if !m.IsRangeEnd(d) {
		t.Fatal("lone start does not stand in for the end")
	}
	if m.InRange(date(2024, time.June, 16)) {
		t.Fatal("day after lone start reported in range")
	}
}

func TestSetInitialRangeSwapsReversedBounds(t *testing.T) {
	m := New(Range, civil.DefaultSpan())
	hi := date(2024, time.June, 20)
	lo := date(2024, time.June, 5)
	m.SetInitialRange(&hi, &lo)

	start, end := m.Bounds()
	if start == nil || end == nil || *start != lo || *end != hi {
		t.Fatalf("reversed bounds not corrected: start=%v end=%v", start, end)
	}
}

func TestOutOfSpanTapIgnored(t *testing.T) {
	m := New(Range, civil.DefaultSpan())
	m.Apply(date(2024, time.June, 15))

	r := m.Apply(date(2101, time.January, 1))
	if r.Picked != nil || r.Range != nil {
		t.Fatalf("out-of-span tap emitted %+v", r)
	}
	start, end := m.Bounds()
	if start == nil || *start != date(2024, time.June, 15) || end != nil {
		t.Fatalf("out-of-span tap mutated state: start=%v end=%v", start, end)
	}
}

func TestPeriodOverlap(t *testing.T) {
	m := New(Range, civil.DefaultSpan())
	m.SetInitialRange(ptr(date(2024, time.June, 20)), ptr(date(2024, time.August, 5)))

	// June overlaps via its tail, August via its head, July entirely.
	months := []time.Month{time.June, time.July, time.August}
	for _, month := range months {
		first := date(2024, month, 1)
		last := date(2024, month, civil.DaysIn(2024, month))
		if !m.OverlapsRange(first, last) {
			t.Fatalf("%v 2024 should overlap the range", month)
		}
	}
	if m.OverlapsRange(date(2024, time.May, 1), date(2024, time.May, 31)) {
		t.Fatal("May 2024 should not overlap")
	}
	if m.OverlapsRange(date(2024, time.September, 1), date(2024, time.September, 30)) {
		t.Fatal("September 2024 should not overlap")
	}
}

// Day-level containment and the period overlap test must agree when the
// period is a single day.
func TestOverlapMatchesInRangeForSingleDayPeriods(t *testing.T) {
	m := New(Range, civil.DefaultSpan())
	m.SetInitialRange(ptr(date(2024, time.June, 10)), ptr(date(2024, time.June, 15)))

	for day := 5; day <= 20; day++ {
		d := date(2024, time.June, day)
		if m.InRange(d) != m.OverlapsRange(d, d) {
			t.Fatalf("day %v: InRange=%v OverlapsRange=%v", d, m.InRange(d), m.OverlapsRange(d, d))
		}
	}
}

func ptr(d civil.Date) *civil.Date { return &d }
