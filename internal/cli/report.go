package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "File and review end-of-shift reports",
		Long:  `Record the housekeeping state at the end of a shift: instrument health, waste level, cleanliness, and free-form notes.`,
	}

	cmd.AddCommand(reportSaveCmd())
	cmd.AddCommand(reportShowCmd())

	return cmd
}

func reportSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "File the report for a shift",
		Long: `File the report for a (date, shift). Filing again replaces the
previous report.

Examples:
  labops report save --date 2026-03-02 --shift day --instruments "all green" --waste half --clean good`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, _ := cmd.Flags().GetString("date")
			shift, _ := cmd.Flags().GetString("shift")
			instruments, _ := cmd.Flags().GetString("instruments")
			waste, _ := cmd.Flags().GetString("waste")
			clean, _ := cmd.Flags().GetString("clean")
			notes, _ := cmd.Flags().GetString("notes")

			err := wire.ReportService().SaveReport(ctx, primary.ShiftReport{
				Date:             date,
				Shift:            shift,
				InstrumentHealth: instruments,
				WasteLevel:       waste,
				Cleanliness:      clean,
				Notes:            notes,
			})
			if err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}
			fmt.Printf("✓ Filed report for %s %s\n", date, shift)
			return nil
		},
	}

	cmd.Flags().String("date", "", "date, YYYY-MM-DD (required)")
	cmd.Flags().String("shift", defaultShift(), "shift: day or night")
	cmd.Flags().String("instruments", "", "instrument health summary")
	cmd.Flags().String("waste", "", "waste container level")
	cmd.Flags().String("clean", "", "bench cleanliness")
	cmd.Flags().String("notes", "", "free-form notes")
	cmd.MarkFlagRequired("date")

	return cmd
}

func reportShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the report for a shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, _ := cmd.Flags().GetString("date")
			shift, _ := cmd.Flags().GetString("shift")

			report, err := wire.ReportService().GetReport(ctx, date, shift)
			if err != nil {
				return fmt.Errorf("failed to load report: %w", err)
			}
			if report == nil {
				fmt.Printf("No report filed for %s %s.\n", date, shift)
				return nil
			}

			fmt.Printf("Report for %s %s (updated %s):\n", report.Date, report.Shift, report.UpdatedAt)
			fmt.Printf("  Instruments: %s\n", report.InstrumentHealth)
			fmt.Printf("  Waste:       %s\n", report.WasteLevel)
			fmt.Printf("  Cleanliness: %s\n", report.Cleanliness)
			if report.Notes != "" {
				fmt.Printf("  Notes:       %s\n", report.Notes)
			}
			return nil
		},
	}

	cmd.Flags().String("date", "", "date, YYYY-MM-DD (required)")
	cmd.Flags().String("shift", defaultShift(), "shift: day or night")
	cmd.MarkFlagRequired("date")

	return cmd
}
