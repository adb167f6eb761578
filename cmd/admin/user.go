package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newUserCmd(withDeps runWithDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var revoke bool
	grant := &cobra.Command{
		Use:   "grant-admin EMAIL",
		Short: "Give a verified user admin rights",
		Args:  cobra.ExactArgs(1),
		RunE: withDeps(func(cmd *cobra.Command, args []string, d *deps) error {
			if err := d.admin.SetAdmin(cmd.Context(), args[0], !revoke); err != nil {
				return err
			}
			if revoke {
				cmd.Printf("Admin rights revoked from %s\n", args[0])
			} else {
				cmd.Printf("Admin rights granted to %s\n", args[0])
			}
			return nil
		}),
	}
	grant.Flags().BoolVar(&revoke, "revoke", false, "remove admin rights instead")
	cmd.AddCommand(grant)

	cmd.AddCommand(newSetSubscriptionCmd(withDeps))

	return cmd
}

func newSetSubscriptionCmd(withDeps runWithDeps) *cobra.Command {
	var (
		until    string
		clearSub bool
	)

	cmd := &cobra.Command{
		Use:   "set-subscription USER_ID",
		Short: "Set or clear a user's subscription expiry",
		Example: `  leave-desk-admin user set-subscription 42 --until 2027-01-01T00:00:00Z
  leave-desk-admin user set-subscription 42 --clear`,
		Args: cobra.ExactArgs(1),
		RunE: withDeps(func(cmd *cobra.Command, args []string, d *deps) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", args[0], err)
			}
			if clearSub == (until != "") {
				return errors.New("exactly one of --until or --clear is required")
			}

			var expiry *time.Time
			if !clearSub {
				t, err := time.Parse(time.RFC3339, until)
				if err != nil {
					return fmt.Errorf("--until: %w", err)
				}
				expiry = &t
			}

			user, err := d.admin.SetSubscriptionExpiry(cmd.Context(), userID, expiry)
			if err != nil {
				return err
			}
			cmd.Printf("User %d (%s) access level: %s\n", user.UserID, user.Email, user.AccessLevel)
			return nil
		}),
	}

	cmd.Flags().StringVar(&until, "until", "", "RFC 3339 subscription expiry")
	cmd.Flags().BoolVar(&clearSub, "clear", false, "remove the subscription")

	return cmd
}
