package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(withDeps runWithDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: withDeps(func(cmd *cobra.Command, _ []string, d *deps) error {
			cmd.Println("Running migrations...")
			if err := d.migrate(); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			cmd.Println("Migrations completed successfully")
			return nil
		}),
	}
}

func newSweepCmd(withDeps runWithDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete expired sessions, pending verifications and reset requests once",
		Args:  cobra.NoArgs,
		RunE: withDeps(func(cmd *cobra.Command, _ []string, d *deps) error {
			if err := d.sweep(cmd.Context()); err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			cmd.Println("Sweep completed")
			return nil
		}),
	}
}
