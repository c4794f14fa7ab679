package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/solatis/segmentvet/internal/catalog"
	"github.com/solatis/segmentvet/internal/core/db"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and optionally seed the segment catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, opts)
		},
	}
	cmd.Flags().Bool("seed", false, "replace the stored catalog with --catalog or the built-in catalog")
	cmd.Flags().Bool("status", false, "show migration status without applying")
	return cmd
}

func runMigrate(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("--db-url required")
	}

	database, err := db.Open(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	out := cmd.OutOrStdout()

	if status, _ := cmd.Flags().GetBool("status"); status {
		statuses, err := db.MigrateStatus(ctx, database)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "MIGRATION\tAPPLIED\tAPPLIED AT")
		for _, s := range statuses {
			appliedAt := "-"
			if s.AppliedAt != nil {
				appliedAt = s.AppliedAt.UTC().Format(time.RFC3339)
			}
			fmt.Fprintf(tw, "%s\t%t\t%s\n", s.ID, s.Applied, appliedAt)
		}
		return tw.Flush()
	}

	applied, err := db.MigrateUp(ctx, database)
	if err != nil {
		return err
	}
	for _, id := range applied {
		opts.log().Info("migration applied", "migration_id", id)
	}
	fmt.Fprintf(out, "Applied %d migration(s)\n", len(applied))

	if seed, _ := cmd.Flags().GetBool("seed"); !seed {
		return nil
	}

	c := catalog.Builtin()
	source := sourceBuiltin
	if cfg.Catalog.Path != "" {
		if c, err = catalog.LoadFile(cfg.Catalog.Path); err != nil {
			return err
		}
		source = sourceFile
	}

	queries, err := db.LoadQueries(database)
	if err != nil {
		return fmt.Errorf("failed to load queries: %w", err)
	}
	if err := catalog.NewStore(queries).Replace(ctx, c); err != nil {
		return err
	}
	opts.log().Info("catalog seeded", "source", source, "segments", c.Len())
	fmt.Fprintf(out, "Seeded %d segment(s) from %s catalog\n", c.Len(), source)
	return nil
}
