package commands

import (
	"github.com/spf13/cobra"

	"github.com/camden-git/familytree/genealogy"
)

func newSubtreeCmd(root *rootOptions) *cobra.Command {
	var (
		rootID   int
		rootWBS  string
		maxDepth int
		genMin   int
		genMax   int
	)

	cmd := &cobra.Command{
		Use:   "subtree",
		Short: "Print the node/edge projection of a subtree as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.loadService()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var opts []genealogy.Option
			if flags.Changed("root-id") {
				opts = append(opts, genealogy.WithRootID(rootID))
			}
			if flags.Changed("root-wbs") {
				opts = append(opts, genealogy.WithRootWBS(rootWBS))
			}
			if flags.Changed("max-depth") {
				opts = append(opts, genealogy.WithMaxDepth(maxDepth))
			}
			if flags.Changed("gen-min") {
				opts = append(opts, genealogy.WithGenMin(genMin))
			}
			if flags.Changed("gen-max") {
				opts = append(opts, genealogy.WithGenMax(genMax))
			}

			payload, err := svc.SubtreePayload(opts...)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), payload)
		},
	}

	cmd.Flags().IntVar(&rootID, "root-id", 0, "root person id")
	cmd.Flags().StringVar(&rootWBS, "root-wbs", "", "root person wbs code")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "levels below the root to include")
	cmd.Flags().IntVar(&genMin, "gen-min", 0, "lowest generation to include")
	cmd.Flags().IntVar(&genMax, "gen-max", 0, "highest generation to include")
	cmd.MarkFlagsMutuallyExclusive("root-id", "root-wbs")
	cmd.MarkFlagsOneRequired("root-id", "root-wbs")
	return cmd
}

func newTimelineCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "Print the migration timeline as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.loadService()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), svc.MigrationTimeline())
		},
	}
}
