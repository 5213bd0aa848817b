package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camden-git/familytree/database"
	"github.com/camden-git/familytree/logger"
	"github.com/camden-git/familytree/repository"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the validated family to a SQLite snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = root.cfg.SnapshotPath
			}

			svc, err := root.loadService()
			if err != nil {
				return err
			}

			db, err := database.InitGormDB(out)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := database.CloseGormDB(db); cerr != nil {
					logger.Logger.Warnw("failed to close snapshot database", logger.FieldError, cerr)
				}
			}()
			if err := database.AutoMigrateModels(db); err != nil {
				return err
			}

			repo := repository.NewGormSnapshotRepository(db)
			if err := repo.SaveFamily(svc.Family()); err != nil {
				return err
			}
			n, err := repo.CountRecords()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d persons to %s\n", n, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "snapshot database path (default SNAPSHOT_PATH)")
	return cmd
}
