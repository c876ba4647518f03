package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/civil"
)

// Pages prints the page-index layout of every paging track for a span, the
// quickest way to sanity-check a host's page math against the engine's.
func (pp *PrettyPrint) Pages(span civil.Span) {
	bold := color.New(color.Bold).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Track"), bold("Pages"), bold("Page 0"), bold("Last page"))
	tbl.AddRow("day", span.DayPages(),
		pageLabel(span.DayPageStart(0)),
		pageLabel(span.DayPageStart(span.DayPages()-1)))
	tbl.AddRow("month", span.MonthPages(),
		span.MonthPageYear(0),
		span.MonthPageYear(span.MonthPages()-1))
	tbl.AddRow("year", span.YearPages(),
		decadeLabel(span.YearPageStart(0)),
		decadeLabel(span.YearPageStart(span.YearPages()-1)))

	_, _ = fmt.Fprintln(color.Output, tbl)
}

func pageLabel(d civil.Date) string {
	return fmt.Sprintf("%s %d", d.Month, d.Year)
}

func decadeLabel(start int) string {
	return fmt.Sprintf("%d – %d", start, start+9)
}
