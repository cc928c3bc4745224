package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/labops/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the labops database",
		Long:  `Initialize the labops database at ~/.labops/labops.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetBool("seed")

			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing labops database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			fmt.Println("✓ Database initialized successfully")

			if seed {
				database, err := db.GetDB()
				if err != nil {
					return fmt.Errorf("failed to open database: %w", err)
				}
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Seeded example roster, mappings, and pool group")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  labops roster add \"Your Name\" --team testers")
			fmt.Println("  labops import requests.csv")
			fmt.Println("  labops board")

			return nil
		},
	}

	cmd.Flags().Bool("seed", false, "seed example fixtures for a quick start")

	return cmd
}
