package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/learnio/learnio/internal/database"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema migrations",
	}

	migrateCmd.AddCommand(
		newMigrateStepCommand("up", "Apply pending migrations", database.MigrateUp),
		newMigrateStepCommand("down", "Roll back migrations", database.MigrateDown),
		newMigrateVersionCommand(),
	)
	return migrateCmd
}

func newMigrateStepCommand(use, short string, direction database.MigrationDirection) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [steps]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return fmt.Errorf("steps must be a non-negative integer: %q", args[0])
				}
				steps = n
			}

			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := database.Migrate(db, cfg.Database.Database, direction, steps); err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			color.Green("Migrations %s completed", use)
			return nil
		},
	}
}

func newMigrateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			version, dirty, err := database.MigrationVersion(db, cfg.Database.Database)
			if err != nil {
				return fmt.Errorf("read migration version: %w", err)
			}
			if dirty {
				color.Yellow("Schema version %d (dirty)", version)
				return nil
			}
			fmt.Printf("Schema version %d\n", version)
			return nil
		},
	}
}
