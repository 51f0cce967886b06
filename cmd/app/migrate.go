package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"laundry/cmd"
	"laundry/internal/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	migrateCmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Manage the PostgreSQL schema",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(c *cobra.Command, args []string) error {
			action := "up"
			if len(args) > 0 {
				action = args[0]
			}
			return runMigrate(c.Context(), action)
		},
	}
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(ctx context.Context, action string) error {
	cfg, l, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	if cfg.DBDriver == cmd.DriverSQLite {
		if action != "up" {
			return fmt.Errorf("sqlite databases only support migrate up")
		}
		db, err := cmd.OpenDatabase(ctx, cfg, l)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		l.Info("sqlite schema is up to date", zap.String("path", cfg.DBDSN))
		return nil
	}

	db, err := migrations.Open(cfg.PostgresDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	runner, err := migrations.NewRunner(db, l)
	if err != nil {
		return err
	}

	switch action {
	case "up":
		return runner.Up(ctx)
	case "down":
		return runner.Down(ctx)
	case "status":
		statuses, err := runner.Status(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
		for _, s := range statuses {
			applied := "-"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown migrate action %q", action)
	}
}
