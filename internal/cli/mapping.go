package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/wire"
)

// MappingCmd returns the mapping command
func MappingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Manage the test mapping table",
		Long: `Manage the rules that place imported tests into board columns.
A rule matches a test description (and optionally variant) and names the
column group and sub-header it belongs to.`,
	}

	cmd.AddCommand(mappingAddCmd())
	cmd.AddCommand(mappingListCmd())
	cmd.AddCommand(mappingRemoveCmd())
	cmd.AddCommand(mappingClearCmd())

	return cmd
}

func mappingAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Add a mapping rule",
		Long: `Add a mapping rule for a test description.

Examples:
  labops mapping add Density --variant 15C --group Physical --sub "Density 15C" --order 1
  labops mapping add pH --group "Wet Chemistry" --sub pH`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			variant, _ := cmd.Flags().GetString("variant")
			group, _ := cmd.Flags().GetString("group")
			sub, _ := cmd.Flags().GetString("sub")
			order, _ := cmd.Flags().GetInt("order")

			row, err := wire.MappingService().AddMapping(ctx, primary.AddMappingRequest{
				Description: args[0],
				Variant:     variant,
				HeaderGroup: group,
				HeaderSub:   sub,
				Order:       order,
				HasOrder:    cmd.Flags().Changed("order"),
			})
			if err != nil {
				return fmt.Errorf("failed to add mapping: %w", err)
			}
			fmt.Printf("✓ Added mapping %s: %s -> %s / %s\n", row.ID, row.Description, row.HeaderGroup, row.HeaderSub)
			return nil
		},
	}

	cmd.Flags().String("variant", "", "test variant the rule requires")
	cmd.Flags().String("group", "", "column group header (required)")
	cmd.Flags().String("sub", "", "column sub-header")
	cmd.Flags().Int("order", 0, "explicit column position")
	cmd.MarkFlagRequired("group")

	return cmd
}

func mappingListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List mapping rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := wire.MappingService().ListMappings(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list mappings: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No mappings defined.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDESCRIPTION\tVARIANT\tGROUP\tSUB\tORDER")
			for _, r := range rows {
				order := "-"
				if r.HasOrder {
					order = fmt.Sprintf("%d", r.Order)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Description, r.Variant, r.HeaderGroup, r.HeaderSub, order)
			}
			return w.Flush()
		},
	}
}

func mappingRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [mapping-id]",
		Short: "Remove one mapping rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.MappingService().RemoveMapping(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to remove mapping: %w", err)
			}
			fmt.Printf("✓ Removed mapping %s\n", args[0])
			return nil
		},
	}
}

func mappingClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole mapping table",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := wire.MappingService().ClearMappings(context.Background())
			if err != nil {
				return fmt.Errorf("failed to clear mappings: %w", err)
			}
			fmt.Printf("✓ Cleared %d mapping(s)\n", n)
			return nil
		},
	}
}
