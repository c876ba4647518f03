package picker

import (
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/navigator"
	"tableflip.dev/datepick/pkg/selection"
)

func TestSinglePickFiresCallback(t *testing.T) {
	var picked []civil.Date
	p := New(Options{
		Mode:   selection.Single,
		Today:  civil.NewDate(2024, time.July, 9),
		OnPick: func(d civil.Date) { picked = append(picked, d) },
	})

	p.TapCell(civil.NewDate(2024, time.July, 4))
	p.TapCell(civil.NewDate(2024, time.July, 5))

	if len(picked) != 2 {
		t.Fatalf("OnPick fired %d times, want 2", len(picked))
	}
	if picked[1] != civil.NewDate(2024, time.July, 5) {
		t.Fatalf("last pick = %v", picked[1])
	}
}

func TestRangePickFiresOncePerCompletedRange(t *testing.T) {
	var ranges []selection.DateRange
	p := New(Options{
		Mode:        selection.Range,
		Today:       civil.NewDate(2024, time.June, 1),
		OnRangePick: func(r selection.DateRange) { ranges = append(ranges, r) },
	})

	p.TapCell(civil.NewDate(2024, time.June, 15))
	if len(ranges) != 0 {
		t.Fatalf("opening tap fired %d range events", len(ranges))
	}

	p.TapCell(civil.NewDate(2024, time.June, 10))
	if len(ranges) != 1 {
		t.Fatalf("OnRangePick fired %d times, want 1", len(ranges))
	}
	want := selection.DateRange{
		Start: civil.NewDate(2024, time.June, 10),
		End:   civil.NewDate(2024, time.June, 15),
	}
	if ranges[0] != want {
		t.Fatalf("range = %+v, want %+v", ranges[0], want)
	}

	// Third tap opens a new range; no event until it closes.
	p.TapCell(civil.NewDate(2024, time.July, 1))
	if len(ranges) != 1 {
		t.Fatalf("third tap fired an event")
	}
}

func TestTapCellDrillsAtCoarserGranularities(t *testing.T) {
	p := New(Options{Today: civil.NewDate(1900, time.January, 15)})
	p.TapHeader()
	p.TapHeader()

	if p.Granularity() != navigator.Year {
		t.Fatalf("granularity = %v, want year", p.Granularity())
	}

	moves := p.TapCell(civil.NewDate(1905, time.January, 1))
	if p.Granularity() != navigator.Month {
		t.Fatalf("granularity = %v, want month", p.Granularity())
	}
	if p.Focus() != civil.NewDate(1905, time.January, 1) {
		t.Fatalf("focus = %v, want 1905-01-01", p.Focus())
	}
	for _, mv := range moves {
		if mv.Transition != navigator.TransitionSnap {
			t.Fatalf("drill move %+v should snap", mv)
		}
	}

	moves = p.TapCell(civil.NewDate(1905, time.June, 1))
	if p.Granularity() != navigator.Day {
		t.Fatalf("granularity = %v, want day", p.Granularity())
	}
	if len(moves) == 0 {
		t.Fatal("month drill realigned no tracks")
	}
}

func TestArrowsAnimateAndClamp(t *testing.T) {
	p := New(Options{
		Span:  civil.Span{MinYear: 2024, MaxYear: 2024},
		Today: civil.NewDate(2024, time.January, 10),
	})

	if moves := p.TapPrevArrow(); moves != nil {
		t.Fatalf("prev at first page produced %+v", moves)
	}

	moves := p.TapNextArrow()
	if len(moves) != 1 || moves[0].Transition != navigator.TransitionAnimate {
		t.Fatalf("next arrow moves = %+v", moves)
	}
	if p.Focus() != civil.NewDate(2024, time.February, 1) {
		t.Fatalf("focus = %v", p.Focus())
	}

	for i := 0; i < 20; i++ {
		p.TapNextArrow()
	}
	if p.Focus() != civil.NewDate(2024, time.December, 1) {
		t.Fatalf("focus = %v, want clamp at 2024-12-01", p.Focus())
	}
}

func TestPageSettledFollowsSwipe(t *testing.T) {
	p := New(Options{Today: civil.NewDate(2024, time.July, 9)})
	span := p.Span()

	target := span.DayPage(civil.NewDate(2024, time.September, 1))
	moves := p.PageSettled(navigator.Day, target)

	if p.Focus() != civil.NewDate(2024, time.September, 1) {
		t.Fatalf("focus = %v", p.Focus())
	}
	for _, mv := range moves {
		if mv.Granularity == navigator.Day && mv.Transition != navigator.TransitionNone {
			t.Fatalf("settled track asked to %v", mv.Transition)
		}
	}

	if moves := p.PageSettled(navigator.Day, span.DayPages()); moves != nil {
		t.Fatal("out-of-track settle accepted")
	}
}

func TestInitialRangeFocusAndCorrection(t *testing.T) {
	hi := civil.NewDate(2024, time.June, 20)
	lo := civil.NewDate(2024, time.June, 5)
	p := New(Options{
		Mode:         selection.Range,
		Today:        civil.NewDate(2030, time.January, 1),
		InitialStart: &hi,
		InitialEnd:   &lo,
	})

	start, end := p.Selection().Bounds()
	if start == nil || end == nil || *start != lo || *end != hi {
		t.Fatalf("initial bounds start=%v end=%v", start, end)
	}
	if p.Focus() != lo {
		t.Fatalf("focus = %v, want the corrected range start", p.Focus())
	}
}

func TestPageCountTracksGranularity(t *testing.T) {
	p := New(Options{Today: civil.NewDate(2024, time.July, 9)})

	if got := p.PageCount(); got != p.Span().DayPages() {
		t.Fatalf("day page count = %d", got)
	}
	p.TapHeader()
	if got := p.PageCount(); got != p.Span().MonthPages() {
		t.Fatalf("month page count = %d", got)
	}
	p.TapHeader()
	if got := p.PageCount(); got != p.Span().YearPages() {
		t.Fatalf("year page count = %d", got)
	}
}

func TestOutOfSpanTapIsIgnored(t *testing.T) {
	var events int
	p := New(Options{
		Mode:        selection.Range,
		Today:       civil.NewDate(2100, time.December, 1),
		OnRangePick: func(selection.DateRange) { events++ },
	})

	p.TapCell(civil.NewDate(2100, time.December, 30))
	p.TapCell(civil.NewDate(2101, time.January, 2)) // trailing cell past the span

	if events != 0 {
		t.Fatalf("out-of-span tap completed a range")
	}
	start, end := p.Selection().Bounds()
	if start == nil || end != nil {
		t.Fatalf("state after ignored tap: start=%v end=%v", start, end)
	}
}
