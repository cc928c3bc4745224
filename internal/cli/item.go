package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/wire"
)

// ItemCmd returns the item command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Record outcomes on assigned items",
		Long: `Mark assigned items done, failed, prepared, returned, or pull
them back out of an assignment. Items are addressed by their assignment
task id and localId.`,
	}

	cmd.AddCommand(itemDoneCmd())
	cmd.AddCommand(itemResetCmd())
	cmd.AddCommand(itemNotOKCmd())
	cmd.AddCommand(itemReturnCmd())
	cmd.AddCommand(itemUnassignCmd())
	cmd.AddCommand(itemPreparedCmd())

	return cmd
}

func itemDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [task-id] [local-id]",
		Short: "Mark an execution item done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.LifecycleService().MarkDone(context.Background(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to mark done: %w", err)
			}
			fmt.Printf("✓ Marked %s done\n", args[1])
			return nil
		},
	}
}

func itemResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [task-id] [local-id]",
		Short: "Reset an item back to pending",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.LifecycleService().ResetToPending(context.Background(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}
			fmt.Printf("✓ Reset %s to pending\n", args[1])
			return nil
		},
	}
}

func itemNotOKCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notok [task-id] [local-id]",
		Short: "Flag an execution item failed",
		Long: `Flag an item Not OK with a mandatory failure reason. The item
stays in its assignment, annotated; use "item return" to send it back
to the pool instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")
			if err := wire.LifecycleService().MarkNotOK(context.Background(), args[0], args[1], reason); err != nil {
				return fmt.Errorf("failed to flag item: %w", err)
			}
			fmt.Printf("✓ Flagged %s Not OK: %s\n", args[1], reason)
			return nil
		},
	}

	cmd.Flags().String("reason", "", "failure reason (required)")
	cmd.MarkFlagRequired("reason")

	return cmd
}

func itemReturnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "return [task-id] [local-id]",
		Short: "Return an unworkable item to the pool",
		Long: `Report an item unworkable. It leaves the assignment and re-enters
the pool as a returned entry carrying the reason and reporter.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")
			reporter, _ := cmd.Flags().GetString("by")
			shift, _ := cmd.Flags().GetString("shift")
			if reporter == "" {
				if cfg := loadConfig(); cfg != nil {
					reporter = cfg.Operator
				}
			}

			err := wire.LifecycleService().ReturnItem(context.Background(), primary.ReturnRequest{
				AssignedTaskID: args[0],
				LocalID:        args[1],
				Reason:         reason,
				ReportedBy:     reporter,
				Shift:          shift,
			})
			if err != nil {
				return fmt.Errorf("failed to return item: %w", err)
			}
			fmt.Printf("✓ Returned %s to the pool\n", args[1])
			return nil
		},
	}

	cmd.Flags().String("reason", "", "return reason (required)")
	cmd.Flags().String("by", "", "reporting tester (defaults to the configured operator)")
	cmd.Flags().String("shift", "", "shift the return happened on")
	cmd.MarkFlagRequired("reason")

	return cmd
}

func itemUnassignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unassign [task-id] [local-id]",
		Short: "Pull an item back into the ordinary pool",
		Long: `Undo an assignment. The item returns to the ordinary pool with
all of its status fields stripped, as if it was never assigned.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.LifecycleService().UnassignItem(context.Background(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to unassign: %w", err)
			}
			fmt.Printf("✓ Unassigned %s\n", args[1])
			return nil
		},
	}
}

func itemPreparedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepared [prepare-task-id] [local-id]",
		Short: "Mark a preparation item prepared",
		Long: `Mark a preparation item prepared. The originating pool item is
synced to ready-for-testing when it still exists.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.LifecycleService().MarkPrepared(context.Background(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to mark prepared: %w", err)
			}
			fmt.Printf("✓ Marked %s prepared\n", args[1])
			return nil
		},
	}
}
