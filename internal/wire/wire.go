// Package wire provides dependency injection for the freshpos application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/freshpos/internal/adapters/cli"
	"github.com/example/freshpos/internal/adapters/classifier"
	"github.com/example/freshpos/internal/adapters/filesystem"
	"github.com/example/freshpos/internal/adapters/sqlite"
	"github.com/example/freshpos/internal/app"
	"github.com/example/freshpos/internal/config"
	"github.com/example/freshpos/internal/db"
	"github.com/example/freshpos/internal/ports/primary"
	"github.com/example/freshpos/internal/ports/secondary"
)

var (
	checkoutService  primary.CheckoutService
	pricebookService primary.PricebookService
	catalogService   primary.CatalogService
	cfg              *config.Config
	once             sync.Once
)

// CheckoutService returns the singleton CheckoutService instance.
func CheckoutService() primary.CheckoutService {
	once.Do(initServices)
	return checkoutService
}

// PricebookService returns the singleton PricebookService instance.
func PricebookService() primary.PricebookService {
	once.Do(initServices)
	return pricebookService
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return catalogService
}

// Config returns the loaded configuration (defaults when no file exists).
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	cfg, err = config.LoadConfig(cwd)
	if err != nil {
		// No config file is fine for read paths; init writes one.
		cfg = config.Default()
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports)
	priceRepo := sqlite.NewPriceRepository(database)
	labelSource := filesystem.NewLabelFileAdapter(labelsPath(cwd, cfg))

	var clf secondary.Classifier
	if cfg.ClassifierCommand != "" {
		clf = classifier.NewCommandAdapter(cfg.ClassifierCommand, nil, cfg.InputSize)
	} else {
		clf = classifier.NewUnavailableAdapter()
	}

	logger := zap.NewNop()
	if os.Getenv("FRESHPOS_DEBUG") != "" {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}

	// Create services (primary ports implementation)
	checkoutService = app.NewCheckoutService(priceRepo, labelSource, clf, cfg.Thresholds(), cfg.Policy(), logger)
	pricebookService = app.NewPricebookService(priceRepo)
	catalogService = app.NewCatalogService(labelSource)
}

// labelsPath resolves the catalog file location.
func labelsPath(cwd string, cfg *config.Config) string {
	if cfg.LabelsPath != "" {
		return cfg.LabelsPath
	}
	return filepath.Join(cwd, ".freshpos", "labels.txt")
}

// ReceiptAdapterWithOutput returns a new ReceiptAdapter writing to the given
// output. Each call creates a new adapter (adapters are stateless translators).
func ReceiptAdapterWithOutput(out io.Writer) *cliadapter.ReceiptAdapter {
	once.Do(initServices)
	return cliadapter.NewReceiptAdapter(checkoutService, out)
}
