package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/wire"
)

// ScheduleCmd returns the schedule command
func ScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage the daily shift roster",
		Long:  `Put people on day or night shifts per date and review who is on.`,
	}

	cmd.AddCommand(scheduleAssignCmd())
	cmd.AddCommand(scheduleRemoveCmd())
	cmd.AddCommand(scheduleShowCmd())

	return cmd
}

func scheduleAssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign [person-id]",
		Short: "Put a person on a shift",
		Long: `Put a person on a shift for a date. Assigning someone already on
the opposite shift of the same day moves them.

Examples:
  labops schedule assign T1 --date 2026-03-02 --shift day`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, _ := cmd.Flags().GetString("date")
			shift, _ := cmd.Flags().GetString("shift")

			err := wire.ScheduleService().Assign(ctx, primary.ScheduleRequest{
				PersonID: args[0],
				Date:     date,
				Shift:    shift,
			})
			if err != nil {
				return fmt.Errorf("failed to assign shift: %w", err)
			}
			fmt.Printf("✓ %s on the %s shift for %s\n", args[0], shift, date)
			return nil
		},
	}

	cmd.Flags().String("date", "", "date, YYYY-MM-DD (required)")
	cmd.Flags().String("shift", defaultShift(), "shift: day or night")
	cmd.MarkFlagRequired("date")

	return cmd
}

func scheduleRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [person-id]",
		Short: "Take a person off a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, _ := cmd.Flags().GetString("date")
			shift, _ := cmd.Flags().GetString("shift")

			err := wire.ScheduleService().Remove(ctx, primary.ScheduleRequest{
				PersonID: args[0],
				Date:     date,
				Shift:    shift,
			})
			if err != nil {
				return fmt.Errorf("failed to remove from shift: %w", err)
			}
			fmt.Printf("✓ %s off the %s shift for %s\n", args[0], shift, date)
			return nil
		},
	}

	cmd.Flags().String("date", "", "date, YYYY-MM-DD (required)")
	cmd.Flags().String("shift", defaultShift(), "shift: day or night")
	cmd.MarkFlagRequired("date")

	return cmd
}

func scheduleShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Show the roster for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			view, err := wire.ScheduleService().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load schedule: %w", err)
			}

			fmt.Printf("Schedule for %s:\n", view.Date)
			fmt.Printf("  Day testers:      %s\n", personList(view.DayTesters))
			fmt.Printf("  Day assistants:   %s\n", personList(view.DayAssistants))
			fmt.Printf("  Night testers:    %s\n", personList(view.NightTesters))
			fmt.Printf("  Night assistants: %s\n", personList(view.NightAssistants))
			return nil
		},
	}

	return cmd
}

func personList(refs []primary.PersonRef) string {
	if len(refs) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	return strings.Join(names, ", ")
}
