package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/freshpos/internal/wire"
)

// LabelsCmd returns the catalog listing command.
func LabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "Print the product label catalog",
		Long:  "Print the ordered label catalog, index-aligned with the classifier output",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			labels, err := wire.CatalogService().Labels(ctx)
			if err != nil {
				return err
			}

			for i, label := range labels {
				fmt.Printf("%3d  %s\n", i, label)
			}
			return nil
		},
	}
}
