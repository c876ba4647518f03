package civil

import (
	"testing"
	"time"
)

func TestSpanPageFormulas(t *testing.T) {
	s := DefaultSpan()

	d := NewDate(1900, time.January, 1)
	if got := s.DayPage(d); got != 0 {
		t.Fatalf("DayPage(min) = %d, want 0", got)
	}
	if got := s.MonthPage(d); got != 0 {
		t.Fatalf("MonthPage(min) = %d, want 0", got)
	}
	if got := s.YearPage(d); got != 0 {
		t.Fatalf("YearPage(min) = %d, want 0", got)
	}

	d = NewDate(2024, time.June, 15)
	if got := s.DayPage(d); got != (2024-1900)*12+5 {
		t.Fatalf("DayPage(2024-06) = %d", got)
	}
	if got := s.MonthPage(d); got != 124 {
		t.Fatalf("MonthPage(2024) = %d", got)
	}
	if got := s.YearPage(d); got != 12 {
		t.Fatalf("YearPage(2024) = %d", got)
	}
}

func TestSpanTotals(t *testing.T) {
	s := DefaultSpan()
	if got := s.DayPages(); got != 201*12 {
		t.Fatalf("DayPages = %d", got)
	}
	if got := s.MonthPages(); got != 201 {
		t.Fatalf("MonthPages = %d", got)
	}
	if got := s.YearPages(); got != 21 {
		t.Fatalf("YearPages = %d", got)
	}
}

func TestDayPagesRoundTrip(t *testing.T) {
	s := Span{MinYear: 1998, MaxYear: 2005}
	for page := 0; page < s.DayPages(); page++ {
		d := s.DayPageStart(page)
		if got := s.DayPage(d); got != page {
			t.Fatalf("day page %d decodes to %v, re-encodes to %d", page, d, got)
		}
	}
}

func TestMonthPagesRoundTrip(t *testing.T) {
	s := Span{MinYear: 1998, MaxYear: 2005}
	for page := 0; page < s.MonthPages(); page++ {
		year := s.MonthPageYear(page)
		if got := s.MonthPage(NewDate(year, time.January, 1)); got != page {
			t.Fatalf("month page %d decodes to %d, re-encodes to %d", page, year, got)
		}
	}
}

func TestYearPagesRoundTrip(t *testing.T) {
	s := Span{MinYear: 1900, MaxYear: 2100}
	for page := 0; page < s.YearPages(); page++ {
		year := s.YearPageStart(page)
		if got := s.YearPage(NewDate(year, time.January, 1)); got != page {
			t.Fatalf("year page %d decodes to %d, re-encodes to %d", page, year, got)
		}
	}
}

func TestYearPageStartAlignment(t *testing.T) {
	s := DefaultSpan()
	if got := s.YearPageStart(0); got != 1900 {
		t.Fatalf("first year page starts at %d, want 1900", got)
	}
	if got := s.YearPageStart(12); got != 2020 {
		t.Fatalf("page 12 starts at %d, want 2020", got)
	}
}

func TestContains(t *testing.T) {
	s := DefaultSpan()
	for year, want := range map[int]bool{
		1899: false,
		1900: true,
		2100: true,
		2101: false,
	} {
		if got := s.Contains(year); got != want {
			t.Fatalf("Contains(%d) = %v, want %v", year, got, want)
		}
	}
}
