package cli

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/freshpos/internal/adapters/classifier"
	"github.com/example/freshpos/internal/config"
	"github.com/example/freshpos/internal/core/resolver"
	"github.com/example/freshpos/internal/db"
	"github.com/example/freshpos/internal/wire"
)

// DoctorCmd returns the station health check command.
func DoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check station configuration and dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ok := color.New(color.FgGreen).SprintFunc()
			bad := color.New(color.FgRed).SprintFunc()
			healthy := true

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig(cwd)
			if err != nil {
				fmt.Printf("%s config: not found (run: freshpos init)\n", bad("✗"))
				cfg = config.Default()
				healthy = false
			} else {
				fmt.Printf("%s config: thresholds gap=%.2f min=%.2f, input=%dpx, policy=%s\n",
					ok("✓"), cfg.ScoreGap, cfg.MinConfidence, cfg.InputSize, cfg.Policy())
			}

			dbPath, _ := db.GetDBPath()
			if entries, err := wire.PricebookService().ListPrices(ctx); err != nil {
				fmt.Printf("%s pricebook: %v\n", bad("✗"), err)
				healthy = false
			} else if len(entries) == 0 {
				fmt.Printf("%s pricebook: empty at %s (run: freshpos init)\n", bad("✗"), dbPath)
				healthy = false
			} else {
				fmt.Printf("%s pricebook: %d item(s) at %s\n", ok("✓"), len(entries), dbPath)
			}

			labels, err := wire.CatalogService().Labels(ctx)
			if err != nil {
				fmt.Printf("%s labels: %v\n", bad("✗"), err)
				healthy = false
			} else {
				fmt.Printf("%s labels: %d label(s)\n", ok("✓"), len(labels))
			}

			if label, err := resolverSelfTest(ctx, labels, cfg.Thresholds()); err != nil {
				fmt.Printf("%s resolver: self-test failed: %v\n", bad("✗"), err)
				healthy = false
			} else {
				fmt.Printf("%s resolver: self-test resolved %q\n", ok("✓"), label)
			}

			if cfg.ClassifierCommand == "" {
				fmt.Printf("%s classifier: not configured; scans degrade to the fallback label\n", bad("✗"))
				healthy = false
			} else if _, err := exec.LookPath(cfg.ClassifierCommand); err != nil {
				fmt.Printf("%s classifier: %s not found in PATH\n", bad("✗"), cfg.ClassifierCommand)
				healthy = false
			} else {
				fmt.Printf("%s classifier: %s\n", ok("✓"), cfg.ClassifierCommand)
			}

			if !healthy {
				fmt.Println("\nStation has issues; checkout still works but degraded.")
			} else {
				fmt.Println("\nStation healthy.")
			}
			return nil
		},
	}
}

// resolverSelfTest pushes a synthetic image through the static
// classifier and the decision rule, exercising the scan pipeline
// without a scorer process.
func resolverSelfTest(ctx context.Context, labels []string, th resolver.Thresholds) (string, error) {
	if len(labels) < 2 {
		return "", fmt.Errorf("need at least two catalog labels, have %d", len(labels))
	}

	// A dominant top score that clears both thresholds.
	scores := make([]float64, len(labels))
	scores[0] = 0.95
	for i := 1; i < len(scores); i++ {
		scores[i] = 0.05 / float64(len(scores)-1)
	}

	var img bytes.Buffer
	if err := classifier.EncodePNG(&img, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		return "", err
	}

	preds, err := classifier.NewStaticAdapter(scores).Classify(ctx, &img)
	if err != nil {
		return "", err
	}

	res := resolver.Resolve(preds, labels, th)
	if res.Kind != resolver.Confident {
		return "", fmt.Errorf("expected a confident resolution for a dominant score")
	}
	return res.Label, nil
}
