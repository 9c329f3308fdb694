package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/freshpos/internal/config"
	"github.com/example/freshpos/internal/db"
	"github.com/example/freshpos/internal/wire"
)

// InitCmd returns the station setup command.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the checkout station",
		Long:  "Create the .freshpos config, the pricebook database, and seed default prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if _, err := config.LoadConfig(cwd); err != nil {
				if err := config.SaveConfig(cwd, config.Default()); err != nil {
					return err
				}
				fmt.Println("✓ Wrote .freshpos/config.json")
			} else {
				fmt.Println("✓ Config already present")
			}

			dbPath, err := db.GetDBPath()
			if err != nil {
				return err
			}
			if _, err := db.GetDB(); err != nil {
				return err
			}
			fmt.Printf("✓ Pricebook ready at %s\n", dbPath)

			inserted, err := wire.PricebookService().Seed(ctx, db.DefaultPrices())
			if err != nil {
				return err
			}
			if inserted > 0 {
				fmt.Printf("✓ Seeded %d default price(s)\n", inserted)
			} else {
				fmt.Println("✓ Pricebook already seeded")
			}

			fmt.Println("\nStation ready. Start a session with: freshpos shell")
			return nil
		},
	}
}
