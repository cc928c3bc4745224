package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/labops/internal/core/classify"
	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/wire"
)

// PoolCmd returns the pool command
func PoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Manage the unassigned task pool",
		Long:  `Inspect and maintain the pool of imported, not-yet-assigned task groups.`,
	}

	cmd.AddCommand(poolListCmd())
	cmd.AddCommand(poolManualCmd())
	cmd.AddCommand(poolOrderCmd())
	cmd.AddCommand(poolCategorizeCmd())
	cmd.AddCommand(poolDeleteCmd())
	cmd.AddCommand(poolPurgeCmd())

	return cmd
}

func poolListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pool groups and their items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			category, _ := cmd.Flags().GetString("category")

			board, err := wire.GridService().Board(ctx, category)
			if err != nil {
				return fmt.Errorf("failed to load pool: %w", err)
			}
			if len(board.Rows) == 0 {
				fmt.Println("Pool is empty.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REQUEST\tDUE\tBADGES\tITEMS")
			for _, row := range board.Rows {
				due := "-"
				if row.HasDue {
					due = row.DueDate.Format("2006-01-02")
				}
				total := len(row.Unmapped)
				for _, cell := range row.Cells {
					total += len(cell)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", row.RequestID, due, badgeString(row.Badges), total)
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("category", "", "filter by category (Urgent, Normal, PoCat, Manual, Other)")

	return cmd
}

func poolManualCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manual [label]",
		Short: "Add an ad-hoc group of manual items",
		Long: `Add a pool group outside the import flow, one item per --test flag.

Each --test value is "description" or "description/variant".

Examples:
  labops pool manual "Monthly QC" --test "Density/15C" --test pH`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tests, _ := cmd.Flags().GetStringArray("test")
			if len(tests) == 0 {
				return fmt.Errorf("at least one --test is required")
			}

			items := make([]item.Item, 0, len(tests))
			for _, spec := range tests {
				desc, variant, _ := strings.Cut(spec, "/")
				it := item.Item{item.FieldDescription: strings.TrimSpace(desc)}
				if strings.TrimSpace(variant) != "" {
					it.Set(item.FieldVariant, strings.TrimSpace(variant))
				}
				items = append(items, it)
			}

			resp, err := wire.LifecycleService().AddManualGroup(ctx, primary.ManualGroupRequest{
				Label: args[0],
				Items: items,
			})
			if err != nil {
				return fmt.Errorf("failed to add manual group: %w", err)
			}

			fmt.Printf("✓ Added manual group %s (%s) with %d item(s)\n", resp.GroupID, resp.RequestID, len(items))
			return nil
		},
	}

	cmd.Flags().StringArray("test", nil, "test to include, as description[/variant] (repeatable)")

	return cmd
}

func poolOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [group-id] [position]",
		Short: "Set a group's explicit sort position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			pos, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position must be a number: %w", err)
			}
			if err := wire.LifecycleService().ReorderGroup(ctx, args[0], pos); err != nil {
				return fmt.Errorf("failed to reorder group: %w", err)
			}
			fmt.Printf("✓ Moved group %s to position %d\n", args[0], pos)
			return nil
		},
	}

	return cmd
}

func poolCategorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize [group-id] [category]",
		Short: "Move a group to a different category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.LifecycleService().RecategorizeGroup(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to recategorize group: %w", err)
			}
			fmt.Printf("✓ Moved group %s to %s\n", args[0], args[1])
			return nil
		},
	}

	return cmd
}

func poolDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [group-id]",
		Short: "Delete one pool group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.LifecycleService().DeleteGroup(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete group: %w", err)
			}
			fmt.Printf("✓ Deleted group %s\n", args[0])
			return nil
		},
	}

	return cmd
}

func poolPurgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every pool group, or every group in one category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			category, _ := cmd.Flags().GetString("category")

			n, err := wire.LifecycleService().PurgePool(ctx, category)
			if err != nil {
				return fmt.Errorf("failed to purge pool: %w", err)
			}
			fmt.Printf("✓ Purged %d group(s)\n", n)
			return nil
		},
	}

	cmd.Flags().String("category", "", "only purge this category")

	return cmd
}

func badgeString(b classify.Badges) string {
	var parts []string
	if b.Urgent {
		parts = append(parts, color.New(color.FgRed).Sprint("URGENT"))
	}
	if b.Sprint {
		parts = append(parts, color.New(color.FgYellow).Sprint("SPRINT"))
	}
	if b.LSP {
		parts = append(parts, color.New(color.FgCyan).Sprint("LSP"))
	}
	if b.PoCat {
		parts = append(parts, color.New(color.FgBlue).Sprint("POCAT"))
	}
	if b.Manual {
		parts = append(parts, color.New(color.FgMagenta).Sprint("MANUAL"))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
