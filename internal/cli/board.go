package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/labops/internal/core/grid"
	"github.com/example/labops/internal/core/mapping"
	"github.com/example/labops/internal/wire"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the planning board",
		Long: `Show the pool aggregated by request id across the resolved test
columns. Rows are ordered by earliest due date; items with no matching
mapping land in the unmapped column.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			category, _ := cmd.Flags().GetString("category")
			refs, _ := cmd.Flags().GetBool("refs")

			board, err := wire.GridService().Board(ctx, category)
			if err != nil {
				return fmt.Errorf("failed to load board: %w", err)
			}
			if len(board.Rows) == 0 {
				fmt.Println("Board is empty.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

			header := "REQUEST\tDUE\tBADGES"
			var keys []string
			for _, col := range board.Columns {
				for _, sub := range col.Subs {
					keys = append(keys, mapping.Key(col.Group, sub))
					header += "\t" + sub
				}
			}
			header += "\tUNMAPPED"
			fmt.Fprintln(w, header)

			for _, row := range board.Rows {
				due := "-"
				if row.HasDue {
					due = row.DueDate.Format("2006-01-02")
				}
				line := fmt.Sprintf("%s\t%s\t%s", row.RequestID, due, badgeString(row.Badges))
				for _, key := range keys {
					line += "\t" + cellString(row.Cells[key], refs)
				}
				line += "\t" + cellString(row.Unmapped, refs)
				fmt.Fprintln(w, line)
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("category", "", "filter by category")
	cmd.Flags().Bool("refs", false, "show group-id:index handles instead of counts")

	return cmd
}

// cellString renders one cell: a count by default, the addressable
// handles under --refs. Empty cells come out as a dot so the grid stays
// scannable.
func cellString(items []grid.CellItem, refs bool) string {
	if len(items) == 0 {
		return "."
	}
	if !refs {
		return fmt.Sprintf("%d", len(items))
	}
	handles := make([]string, 0, len(items))
	for _, ci := range items {
		handles = append(handles, fmt.Sprintf("%s:%d", ci.GroupID, ci.Index))
	}
	return strings.Join(handles, ",")
}
