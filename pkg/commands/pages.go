package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/runner/pages"
)

func addPages(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the page-index layout of each paging track.",
		Example: `
datepick pages
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p := pages.Pages{}
			return p.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
