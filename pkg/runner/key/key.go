package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Key prints the legend for the calendar's cell markers.
type Key struct{}

type marker struct {
	Symbol  string
	Meaning string
}

var markers = []marker{
	{"[ ]", "cursor"},
	{"* *", "selected date / range bound"},
	{"· ·", "inside the selected range"},
	{"bold", "today"},
	{"underline", "marked day"},
	{"faint", "outside the shown month"},
}

func (k *Key) Do(_ context.Context) error {
	bold := color.New(color.Bold).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Symbol"), bold("Meaning"))
	for _, m := range markers {
		tbl.AddRow(m.Symbol, m.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
