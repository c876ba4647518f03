package mark

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/store"
)

const layoutISO = "2006-01-02"

// Add stores a mark for one day.
type Add struct {
	Date  string
	Label string

	Persistence store.Persistence
}

func (a *Add) Do(_ context.Context) error {
	d, err := parse(a.Date)
	if err != nil {
		return err
	}
	if err := a.Persistence.Store(store.Mark{Date: d, Label: a.Label}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "marked %s\n", d)
	return nil
}

// Remove deletes a mark.
type Remove struct {
	Date string

	Persistence store.Persistence
}

func (r *Remove) Do(_ context.Context) error {
	d, err := parse(r.Date)
	if err != nil {
		return err
	}
	if err := r.Persistence.Delete(d); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "unmarked %s\n", d)
	return nil
}

// List prints every stored mark.
type List struct {
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	marks := l.Persistence.List(ctx)
	if len(marks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return nil
	}

	d := color.New(color.Bold)
	for _, m := range marks {
		_, _ = d.Printf("%s", m.Date)
		if m.Label != "" {
			fmt.Printf("  %s", m.Label)
		}
		fmt.Println()
	}
	return nil
}

func parse(val string) (civil.Date, error) {
	t, err := time.Parse(layoutISO, val)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date %q, expected format %q", val, layoutISO)
	}
	return civil.FromTime(t), nil
}
