package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/example/freshpos/internal/wire"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Manage the pricebook (name-keyed unit prices)",
	Long:  "Set, delete, and list prices in the freshpos pricebook",
}

var priceSetCmd = &cobra.Command{
	Use:   "set [name] [price]",
	Short: "Set the unit price for an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name := args[0]

		price, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", args[1], err)
		}

		if err := wire.PricebookService().SetPrice(ctx, name, price); err != nil {
			return err
		}

		fmt.Printf("✓ %s -> €%s\n", name, price.StringFixed(2))
		return nil
	},
}

var priceDelCmd = &cobra.Command{
	Use:   "del [name]",
	Short: "Remove an item from the pricebook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name := args[0]

		if err := wire.PricebookService().DeletePrice(ctx, name); err != nil {
			return err
		}

		fmt.Printf("✓ Removed %s\n", name)
		return nil
	},
}

var priceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all priced items",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		entries, err := wire.PricebookService().ListPrices(ctx)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("Pricebook is empty. Seed it with: freshpos init")
			return nil
		}

		fmt.Printf("Found %d item(s):\n\n", len(entries))
		for _, e := range entries {
			fmt.Printf("%-20s €%s\n", e.Name, e.Price.StringFixed(2))
		}
		return nil
	},
}

// PriceCmd returns the pricebook administration command.
func PriceCmd() *cobra.Command {
	priceCmd.AddCommand(priceSetCmd)
	priceCmd.AddCommand(priceDelCmd)
	priceCmd.AddCommand(priceListCmd)
	return priceCmd
}
