package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/labops/internal/cli"
	"github.com/example/labops/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "labops",
		Short:   "labops - laboratory operations planner",
		Version: version.String(),
		Long: `labops is a CLI tool for planning laboratory test work.
It imports work request spreadsheets into a task pool, places tests on a
mapped planning board, and tracks assignments, outcomes, and shifts.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.PoolCmd())
	rootCmd.AddCommand(cli.BoardCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.ItemCmd())
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.ScheduleCmd())
	rootCmd.AddCommand(cli.RosterCmd())
	rootCmd.AddCommand(cli.MappingCmd())
	rootCmd.AddCommand(cli.ReportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
