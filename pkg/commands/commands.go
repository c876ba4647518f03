package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "datepick",
		Short: base.Wrap80("Date picking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addClassic(topLevel)
	addKey(topLevel)
	addShow(topLevel)
	addPages(topLevel)
	addMark(topLevel)
	addVersion(topLevel)
}
