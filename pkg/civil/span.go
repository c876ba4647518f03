package civil

import "time"

// Span is the inclusive range of years the picker can page through. All
// page-index arithmetic is defined only inside the span.
type Span struct {
	MinYear int
	MaxYear int
}

// DefaultSpan covers 1900 through 2100.
func DefaultSpan() Span {
	return Span{MinYear: 1900, MaxYear: 2100}
}

// Contains reports whether year falls inside the span.
func (s Span) Contains(year int) bool {
	return year >= s.MinYear && year <= s.MaxYear
}

// ContainsDate reports whether d's year falls inside the span.
func (s Span) ContainsDate(d Date) bool {
	return s.Contains(d.Year)
}

// DayPages is the number of month pages the day track scrolls through.
func (s Span) DayPages() int {
	return (s.MaxYear - s.MinYear + 1) * 12
}

// MonthPages is the number of year pages the month track scrolls through.
func (s Span) MonthPages() int {
	return s.MaxYear - s.MinYear + 1
}

// YearPages is the number of decade pages the year track scrolls through.
func (s Span) YearPages() int {
	return (s.MaxYear-s.MinYear)/10 + 1
}

// DayPage returns the index of the month page containing d. Day pages index
// months in row-major (year, month) order.
func (s Span) DayPage(d Date) int {
	return (d.Year-s.MinYear)*12 + int(d.Month) - 1
}

// MonthPage returns the index of the year page containing d.
func (s Span) MonthPage(d Date) int {
	return d.Year - s.MinYear
}

// YearPage returns the index of the decade page containing d.
func (s Span) YearPage(d Date) int {
	return (d.Year - s.MinYear) / 10
}

// DayPageStart decodes a day-track page index into the first day of its
// month. The caller must keep page inside [0, DayPages()).
func (s Span) DayPageStart(page int) Date {
	return Date{
		Year:  s.MinYear + page/12,
		Month: time.Month(page%12 + 1),
		Day:   1,
	}
}

// MonthPageYear decodes a month-track page index into its year.
func (s Span) MonthPageYear(page int) int {
	return s.MinYear + page
}

// YearPageStart decodes a year-track page index into the first year shown on
// that page. Pages are aligned to the span's minimum year, ten years per
// page.
func (s Span) YearPageStart(page int) int {
	return s.MinYear + page*10
}
