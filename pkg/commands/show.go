package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/show"
	"tableflip.dev/datepick/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a month page.",
		Example: `
datepick show
datepick show --month=2024-07 --start=2024-07-10 --end=2024-07-14
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := show.Show{
				Month:       do.Month,
				Start:       do.Start,
				End:         do.End,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddMonthArgs(cmd, do)
	options.AddRangeArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
