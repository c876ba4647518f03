package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/selection"
	"tableflip.dev/datepick/pkg/store"
	"tableflip.dev/datepick/pkg/ui"
)

func addClassic(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}

	cmd := &cobra.Command{
		Use:   "classic",
		Short: "Pick a date with the legacy terminal UI.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}

			mode := cfg.Mode()
			if mo.Range {
				mode = selection.Range
			}
			u := ui.UI{Mode: mode, Span: cfg.Span()}
			return u.Do(context.Background())
		},
	}

	options.AddModeArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
