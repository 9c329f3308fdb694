package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/freshpos/internal/core/scan"
	"github.com/example/freshpos/internal/ports/primary"
	"github.com/example/freshpos/internal/wire"
)

// ScanCmd returns the one-shot scan command: classify a single image
// and print the resolution without holding a session.
func ScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [image]",
		Short: "Classify one image and print the resolution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("cannot read %s: %w", path, err)
			}

			resp, err := wire.CheckoutService().Scan(ctx, primary.ScanRequest{
				Kind:     scan.SourceUpload,
				Identity: uploadIdentity(path),
				Image:    bytes.NewReader(data),
			})
			if err != nil {
				return err
			}

			receipt := wire.ReceiptAdapterWithOutput(cmd.OutOrStdout())
			receipt.RenderScanOutcome(resp)
			if resp.Outcome == primary.OutcomeNeedsChoice {
				fmt.Fprintln(cmd.OutOrStdout(), "resolve the choice in an interactive session: freshpos shell")
			}
			return nil
		},
	}
}
