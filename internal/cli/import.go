package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/labops/internal/adapters/spreadsheet"
	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file.csv]",
		Short: "Import a work request spreadsheet into the pool",
		Long: `Import a CSV export of the lab's work request sheet.

Rows are grouped by request id, compound tests are split into their
variants, and obvious junk rows are dropped. Each group lands in the
pool under a suggested category.

Examples:
  labops import requests.csv
  labops import requests.csv --exclude "Internal Note" --exclude "Approver"
  labops import requests.csv --split-rules rules.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			excluded, _ := cmd.Flags().GetStringArray("exclude")
			splitRules, _ := cmd.Flags().GetString("split-rules")

			if splitRules == "" {
				if cfg := loadConfig(); cfg != nil {
					splitRules = cfg.SplitRulesPath
				}
			}

			rows, err := spreadsheet.ReadFile(args[0])
			if err != nil {
				return err
			}

			resp, err := wire.ImportService().ImportRows(ctx, primary.ImportRequest{
				Rows:            rows,
				ExcludedColumns: excluded,
				SplitRulesPath:  splitRules,
			})
			if err != nil {
				return fmt.Errorf("failed to import: %w", err)
			}

			fmt.Printf("✓ Imported %d item(s) in %d group(s)\n", resp.ItemsImported, resp.GroupsCreated)
			if resp.DroppedRows > 0 {
				fmt.Printf("  Dropped %d invalid row(s)\n", resp.DroppedRows)
			}
			return nil
		},
	}

	cmd.Flags().StringArray("exclude", nil, "column to drop during import (repeatable)")
	cmd.Flags().String("split-rules", "", "YAML file overriding the compound-test split table")

	return cmd
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file.csv]",
		Short: "Export the current pool back to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			rows, err := wire.ImportService().ExportPool(ctx)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("Pool is empty, nothing to export.")
				return nil
			}

			columns := spreadsheet.Columns(rows)
			if err := spreadsheet.WriteFile(args[0], columns, rows); err != nil {
				return err
			}

			fmt.Printf("✓ Exported %d item(s) to %s\n", len(rows), args[0])
			return nil
		},
	}

	return cmd
}
