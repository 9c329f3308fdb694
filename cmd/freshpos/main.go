package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/freshpos/internal/cli"
	"github.com/example/freshpos/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "freshpos",
		Short:   "freshpos - scan-to-cart checkout for a self-scan produce stand",
		Version: version.String(),
		Long: `freshpos runs a checkout station: an image classifier guesses scanned
produce, uncertain guesses become a two-way human choice, and the cart
settles into a consolidated receipt.`,
	}

	// Station setup and diagnostics
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	// Checkout
	rootCmd.AddCommand(cli.ShellCmd())
	rootCmd.AddCommand(cli.ScanCmd())

	// Catalog and pricebook administration
	rootCmd.AddCommand(cli.PriceCmd())
	rootCmd.AddCommand(cli.LabelsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
