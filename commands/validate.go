package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse, validate and build the tree, then print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.loadService()
			if err != nil {
				return err
			}
			stats := svc.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d persons, %d roots, %d edges, %d timeline years\n",
				stats.Persons, stats.Roots, stats.Edges, stats.Years)
			return nil
		},
	}
}
