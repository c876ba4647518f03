package show

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/selection"
	"tableflip.dev/datepick/pkg/store"
)

const layoutISO = "2006-01"

// Show prints one month page to stdout.
type Show struct {
	// Month selects the page, formatted "2006-01"; empty means the current
	// month.
	Month string

	// Start and End preview a range selection on the printed page,
	// formatted "2006-01-02".
	Start string
	End   string

	Config      store.Config
	Persistence store.Persistence
}

func (s *Show) Do(ctx context.Context) error {
	cfg := s.Config
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	focus := civil.Today()
	if s.Month != "" {
		t, err := time.Parse(layoutISO, s.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected format %q", s.Month, layoutISO)
		}
		focus = civil.FromTime(t)
	}
	if !cfg.Span().ContainsDate(focus) {
		return fmt.Errorf("%d is outside the configured %d–%d span",
			focus.Year, cfg.Span().MinYear, cfg.Span().MaxYear)
	}

	opts := picker.Options{
		Mode: selection.Range,
		Span: cfg.Span(),
	}
	if start, err := parseDate(s.Start); err != nil {
		return err
	} else if start != nil {
		opts.InitialStart = start
	}
	if end, err := parseDate(s.End); err != nil {
		return err
	} else if end != nil {
		opts.InitialEnd = end
	}

	p := picker.New(opts)
	p.PageSettled(p.Granularity(), cfg.Span().DayPage(civil.FirstOfMonth(focus)))

	marked := map[string]bool{}
	if s.Persistence != nil {
		for _, m := range s.Persistence.ListMonth(ctx, focus.Year, focus.Month) {
			marked[m.Date.String()] = true
		}
	}

	pp := &printers.PrettyPrint{Marked: marked}
	pp.Title(p.Title())
	pp.Page(p.Granularity(), p.CurrentCells())
	return nil
}

func parseDate(val string) (*civil.Date, error) {
	if val == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected format 2006-01-02", val)
	}
	d := civil.FromTime(t)
	return &d, nil
}
