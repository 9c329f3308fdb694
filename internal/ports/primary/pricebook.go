package primary

import (
	"context"

	"github.com/shopspring/decimal"
)

// PricebookService defines the primary port for pricebook administration.
type PricebookService interface {
	// SetPrice upserts the price for an item.
	SetPrice(ctx context.Context, name string, price decimal.Decimal) error

	// DeletePrice removes an item from the pricebook.
	DeletePrice(ctx context.Context, name string) error

	// ListPrices returns all pricebook entries ordered by name.
	ListPrices(ctx context.Context) ([]*PriceEntry, error)

	// Seed inserts default prices for any catalog label not yet priced.
	// Returns the number of entries inserted.
	Seed(ctx context.Context, entries map[string]decimal.Decimal) (int, error)
}

// PriceEntry is one pricebook row.
type PriceEntry struct {
	Name  string
	Price decimal.Decimal
}

// CatalogService defines the primary port for the label catalog.
type CatalogService interface {
	// Labels returns the ordered product names, index-aligned with the
	// classifier output.
	Labels(ctx context.Context) ([]string, error)
}
