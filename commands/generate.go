package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camden-git/familytree/generator"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := generator.DefaultOptions()
	var out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random but valid family CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = root.cfg.FamilyCSVPath
			}
			persons, err := generator.WriteCSVFile(out, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %d persons to %s\n", len(persons), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output CSV path (default FAMILY_CSV_PATH)")
	cmd.Flags().IntVar(&opts.NumRoots, "roots", opts.NumRoots, "number of root ancestors")
	cmd.Flags().IntVar(&opts.MaxDepth, "depth", opts.MaxDepth, "generations per root")
	cmd.Flags().IntVar(&opts.MaxChildren, "max-children", opts.MaxChildren, "maximum children per person")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	return cmd
}
