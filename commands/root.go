// Package commands holds the familytree command line.
package commands

import (
	"database/sql"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/camden-git/familytree/config"
	"github.com/camden-git/familytree/database"
	"github.com/camden-git/familytree/lineage"
	"github.com/camden-git/familytree/logger"
	"github.com/camden-git/familytree/repository"
	"github.com/camden-git/familytree/services"
)

type rootOptions struct {
	csvPath  string
	dbPath   string
	jsonLogs bool

	cfg config.Config
}

// NewRootCmd builds the command tree. Environment (and an optional .env file)
// supplies defaults; persistent flags override them.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "familytree",
		Short:         "Load, validate and query WBS-coded family trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.csvPath, "csv", "", "family CSV file (overrides FAMILY_CSV_PATH)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database with a people table (overrides DATABASE_PATH)")
	cmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "emit JSON logs (overrides LOG_JSON)")

	cmd.AddCommand(
		newServeCmd(opts),
		newValidateCmd(opts),
		newSubtreeCmd(opts),
		newTimelineCmd(opts),
		newExportCmd(opts),
		newGenerateCmd(opts),
	)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil {
		logger.Logger.Debugw("no .env file loaded", logger.FieldError, err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if o.csvPath != "" {
		cfg.FamilyCSVPath = o.csvPath
	}
	if o.dbPath != "" {
		cfg.DatabasePath = o.dbPath
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.LogJSON = o.jsonLogs
	}
	o.cfg = cfg

	return logger.Initialize(cfg.LogJSON)
}

// loadService builds the service from the database when one is configured, else from the CSV file.
func (o *rootOptions) loadService() (*services.FamilyService, error) {
	var svcOpts []services.ServiceOption
	if o.cfg.LineagePath != "" {
		sys, err := lineage.FromYAML(o.cfg.LineagePath)
		if err != nil {
			return nil, err
		}
		svcOpts = append(svcOpts, services.WithLineage(sys))
	}

	if o.cfg.DatabasePath == "" {
		return services.LoadFamilyService(repository.NewCSVFamilyRepository(o.cfg.FamilyCSVPath), svcOpts...)
	}

	db, err := database.OpenSourceDB(o.cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	defer func(db *sql.DB) {
		if cerr := db.Close(); cerr != nil {
			logger.Logger.Warnw("failed to close database", logger.FieldError, cerr)
		}
	}(db)
	return services.LoadFamilyService(repository.NewSQLFamilyRepository(db), svcOpts...)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
