package options

import (
	"github.com/spf13/cobra"
)

// DateOptions
type DateOptions struct {
	Month string
	Start string
	End   string
}

func AddMonthArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Specify a month, example: --month="2024-07". Defaults to the current month.`)
}

func AddRangeArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.Start, "start", "",
		`Range start to preview, example: --start="2024-07-10".`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`Range end to preview, example: --end="2024-07-14".`)
}

// ModeOptions
type ModeOptions struct {
	Range bool
}

func AddModeArgs(cmd *cobra.Command, o *ModeOptions) {
	cmd.Flags().BoolVar(&o.Range, "range", false,
		"Pick a date range instead of a single date.")
}
