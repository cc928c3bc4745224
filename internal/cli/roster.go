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

// RosterCmd returns the roster command
func RosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage lab personnel",
		Long:  `Register, rename, and remove the testers and assistants shifts draw from.`,
	}

	cmd.AddCommand(rosterAddCmd())
	cmd.AddCommand(rosterListCmd())
	cmd.AddCommand(rosterRenameCmd())
	cmd.AddCommand(rosterRemoveCmd())

	return cmd
}

func rosterAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Register a tester or assistant",
		Long: `Register a person on one of the two teams.

Examples:
  labops roster add "Kim L." --team testers
  labops roster add Jonas --team assistants`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			team, _ := cmd.Flags().GetString("team")

			person, err := wire.RosterService().AddPerson(ctx, primary.AddPersonRequest{
				Name: args[0],
				Team: team,
			})
			if err != nil {
				return fmt.Errorf("failed to add person: %w", err)
			}
			fmt.Printf("✓ Added %s (%s) to %s\n", person.Name, person.ID, person.Team)
			return nil
		},
	}

	cmd.Flags().String("team", "testers", "team: testers or assistants")

	return cmd
}

func rosterListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			team, _ := cmd.Flags().GetString("team")

			people, err := wire.RosterService().ListPeople(ctx, team)
			if err != nil {
				return fmt.Errorf("failed to list people: %w", err)
			}
			if len(people) == 0 {
				fmt.Println("No people registered.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTEAM")
			for _, p := range people {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.Team)
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("team", "", "filter by team")

	return cmd
}

func rosterRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [person-id] [new-name]",
		Short: "Rename a person",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.RosterService().RenamePerson(context.Background(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to rename person: %w", err)
			}
			fmt.Printf("✓ Renamed %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func rosterRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [person-id]",
		Short: "Remove a person from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.RosterService().RemovePerson(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to remove person: %w", err)
			}
			fmt.Printf("✓ Removed %s\n", args[0])
			return nil
		},
	}
}
