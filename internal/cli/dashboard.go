package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/labops/internal/wire"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show per-person outcomes for one shift",
		Long: `Show what each person on a shift has done, broken out by test
description: done, pending, failed, returned, and prepared counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, _ := cmd.Flags().GetString("date")
			shift, _ := cmd.Flags().GetString("shift")

			summaries, err := wire.GridService().Dashboard(ctx, date, shift)
			if err != nil {
				return fmt.Errorf("failed to load dashboard: %w", err)
			}
			if len(summaries) == 0 {
				fmt.Printf("No assignments for %s %s.\n", date, shift)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PERSON\tROLE\tTEST\tDONE\tPENDING\tNOT OK\tRETURNED\tPREPARED")
			for _, s := range summaries {
				name := s.PersonName
				if name == "" {
					name = s.PersonID
				}
				for i, c := range s.Counts {
					label, role := name, s.Role
					if i > 0 {
						label, role = "", ""
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
						label, role, c.Description, c.Done, c.Pending, c.NotOK, c.Returned, c.Prepared)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("date", "", "date, YYYY-MM-DD (required)")
	cmd.Flags().String("shift", defaultShift(), "shift: day or night")
	cmd.MarkFlagRequired("date")

	return cmd
}
