package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/wire"
)

// AssignCmd returns the assign command
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign pool items to people",
		Long: `Assign selected pool items to a tester for execution or to an
assistant for preparation. Items are addressed as group-id:index, the
handles shown by "labops board --refs".`,
	}

	cmd.AddCommand(assignExecCmd())
	cmd.AddCommand(assignPrepCmd())

	return cmd
}

func assignExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [group-id:index]...",
		Short: "Assign items to a tester for execution",
		Long: `Move the selected items out of the pool into an execution
assignment.

Examples:
  labops assign exec G1:0 G1:2 --person T1 --date 2026-03-02 --shift day`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssign(cmd, args, wire.LifecycleService().AssignForExecution, "execution")
		},
	}

	addAssignFlags(cmd)
	return cmd
}

func assignPrepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prep [group-id:index]...",
		Short: "Assign items to an assistant for preparation",
		Long: `Copy the selected items into a preparation assignment. The pool
keeps the originals marked as awaiting preparation; manual items are
cloned instead.

Examples:
  labops assign prep G1:1 --person A1 --date 2026-03-02 --shift night`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssign(cmd, args, wire.LifecycleService().AssignForPreparation, "preparation")
		},
	}

	addAssignFlags(cmd)
	return cmd
}

func addAssignFlags(cmd *cobra.Command) {
	cmd.Flags().String("person", "", "person id (required)")
	cmd.Flags().String("date", "", "assignment date, YYYY-MM-DD (required)")
	cmd.Flags().String("shift", defaultShift(), "shift: day or night")
	cmd.MarkFlagRequired("person")
	cmd.MarkFlagRequired("date")
}

func runAssign(cmd *cobra.Command, args []string, assign func(context.Context, primary.AssignRequest) (*primary.AssignResponse, error), kind string) error {
	ctx := context.Background()
	person, _ := cmd.Flags().GetString("person")
	date, _ := cmd.Flags().GetString("date")
	shift, _ := cmd.Flags().GetString("shift")

	selections, err := parseSelections(args)
	if err != nil {
		return err
	}

	resp, err := assign(ctx, primary.AssignRequest{
		Selections: selections,
		PersonID:   person,
		Date:       date,
		Shift:      shift,
	})
	if err != nil {
		return fmt.Errorf("failed to assign: %w", err)
	}

	fmt.Printf("✓ Assigned %d item(s) for %s to %s (%s %s)\n", resp.ItemCount, kind, person, date, shift)
	for _, id := range resp.TaskIDs {
		fmt.Printf("  Task: %s\n", id)
	}
	return nil
}

// parseSelections turns group-id:index arguments into item references.
func parseSelections(args []string) ([]primary.ItemRef, error) {
	refs := make([]primary.ItemRef, 0, len(args))
	for _, arg := range args {
		groupID, idxStr, ok := strings.Cut(arg, ":")
		if !ok || groupID == "" {
			return nil, fmt.Errorf("invalid selection %q, expected group-id:index", arg)
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid item index in %q", arg)
		}
		refs = append(refs, primary.ItemRef{GroupID: groupID, Index: idx})
	}
	return refs, nil
}
