package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/selection"
	"tableflip.dev/datepick/pkg/store"
	"tableflip.dev/datepick/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Pick a date interactively.",
		Example: `
datepick ui
datepick ui --range
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}

			mode := cfg.Mode()
			if mo.Range {
				mode = selection.Range
			}
			return app.Run(picker.Options{
				Mode: mode,
				Span: cfg.Span(),
			}, p)
		},
	}

	options.AddModeArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
