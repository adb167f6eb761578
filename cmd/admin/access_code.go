package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-leave-desk/models"
	"github.com/spf13/cobra"
)

func newAccessCodeCmd(withDeps runWithDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "access-code",
		Aliases: []string{"code"},
		Short:   "Manage access codes",
	}

	cmd.AddCommand(newAccessCodeCreateCmd(withDeps))
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all access codes",
		Args:  cobra.NoArgs,
		RunE: withDeps(func(cmd *cobra.Command, _ []string, d *deps) error {
			codes, err := d.admin.ListAccessCodes(cmd.Context())
			if err != nil {
				return err
			}
			printAccessCodes(cmd, codes)
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "deactivate CODE",
		Short: "Stop an access code from being redeemed",
		Args:  cobra.ExactArgs(1),
		RunE: withDeps(func(cmd *cobra.Command, args []string, d *deps) error {
			if err := d.admin.DeactivateAccessCode(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Access code %s deactivated\n", args[0])
			return nil
		}),
	})

	return cmd
}

func newAccessCodeCreateCmd(withDeps runWithDeps) *cobra.Command {
	var (
		description  string
		duration     int
		durationType string
		maxUses      int
		expires      string
	)

	cmd := &cobra.Command{
		Use:   "create CODE",
		Short: "Create an access code",
		Example: `  leave-desk-admin access-code create SPRING26 --duration 3 --type months --max-uses 50
  leave-desk-admin access-code create PILOT --duration 14 --expires 2026-12-31T00:00:00Z`,
		Args: cobra.ExactArgs(1),
		RunE: withDeps(func(cmd *cobra.Command, args []string, d *deps) error {
			req := models.CreateAccessCodeRequest{
				Code:         args[0],
				Description:  description,
				Duration:     duration,
				DurationType: models.DurationType(durationType),
			}
			if cmd.Flags().Changed("max-uses") {
				req.MaxUses = &maxUses
			}
			if expires != "" {
				t, err := time.Parse(time.RFC3339, expires)
				if err != nil {
					return fmt.Errorf("--expires: %w", err)
				}
				req.ExpiresAt = &t
			}

			created, err := d.admin.CreateAccessCode(cmd.Context(), req.ToAccessCode(nil))
			if err != nil {
				return err
			}
			cmd.Printf("Created %s: %s\n", created.Code, created.Summary())
			return nil
		}),
	}

	cmd.Flags().StringVar(&description, "description", "", "free-form note")
	cmd.Flags().IntVar(&duration, "duration", 30, "length of the granted access")
	cmd.Flags().StringVar(&durationType, "type", string(models.DurationTypeDays), "duration unit: days or months")
	cmd.Flags().IntVar(&maxUses, "max-uses", 0, "redemption limit (unlimited when omitted)")
	cmd.Flags().StringVar(&expires, "expires", "", "RFC 3339 time after which the code cannot be redeemed")

	return cmd
}

func printAccessCodes(cmd *cobra.Command, codes []models.AccessCode) {
	if len(codes) == 0 {
		cmd.Println("No access codes")
		return
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tGRANTS\tUSES\tACTIVE\tEXPIRES")
	for _, c := range codes {
		uses := strconv.Itoa(c.CurrentUses)
		if c.MaxUses != nil {
			uses += "/" + strconv.Itoa(*c.MaxUses)
		}
		expires := "-"
		if c.ExpiresAt != nil {
			expires = c.ExpiresAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%d %s\t%s\t%t\t%s\n", c.Code, c.Duration, c.DurationType, uses, c.IsActive, expires)
	}
	_ = tw.Flush()
}
