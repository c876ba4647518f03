package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/runner/mark"
	"tableflip.dev/datepick/pkg/store"
)

func addMark(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Manage day marks shown on the calendar.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addMarkAdd(cmd)
	addMarkRemove(cmd)
	addMarkList(cmd)

	topLevel.AddCommand(cmd)
}

func addMarkAdd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add DATE [LABEL]",
		Short: "Mark a day.",
		Example: `
datepick mark add 2024-07-04 "independence day"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			a := mark.Add{
				Date:        args[0],
				Label:       strings.Join(args[1:], " "),
				Persistence: p,
			}
			return a.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}

func addMarkRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm DATE",
		Short: "Unmark a day.",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			r := mark.Remove{Date: args[0], Persistence: p}
			return r.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}

func addMarkList(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List marked days.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			l := mark.List{Persistence: p}
			return l.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}
