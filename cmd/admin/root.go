package main

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. open is called lazily by every
// subcommand that needs the database.
func NewRootCmd(open depsFactory) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "leave-desk-admin",
		Short: "Operator tools for the leave desk",
		Long: `leave-desk-admin manages the leave desk database directly: it applies
migrations, manages access codes, grants admin rights, overrides
subscriptions and sweeps expired records.

Configuration is read from the same environment variables as the server,
optionally merged with a JSON file passed via --config.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "JSON config file path")

	withDeps := func(fn func(cmd *cobra.Command, args []string, d *deps) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			d, err := open(ctx, configFile)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := d.close(); cerr != nil {
					cmd.PrintErrf("close: %v\n", cerr)
				}
			}()
			return fn(cmd, args, d)
		}
	}

	cmd.AddCommand(newMigrateCmd(withDeps))
	cmd.AddCommand(newSweepCmd(withDeps))
	cmd.AddCommand(newAccessCodeCmd(withDeps))
	cmd.AddCommand(newUserCmd(withDeps))

	return cmd
}

type runWithDeps func(fn func(cmd *cobra.Command, args []string, d *deps) error) func(*cobra.Command, []string) error
