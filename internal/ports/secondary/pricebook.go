// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceRepository defines the secondary port for price lookups.
// Lookups are by exact item name, case-sensitive.
type PriceRepository interface {
	// PriceOf returns the unit price for an item. A missing item is not
	// an error; it prices at zero.
	PriceOf(ctx context.Context, name string) (decimal.Decimal, error)

	// Set upserts the price for an item.
	Set(ctx context.Context, name string, price decimal.Decimal) error

	// Delete removes an item from the pricebook.
	Delete(ctx context.Context, name string) error

	// List returns all priced items ordered by name.
	List(ctx context.Context) ([]*PriceRecord, error)
}

// PriceRecord represents one pricebook entry as stored in persistence.
type PriceRecord struct {
	Name  string
	Price decimal.Decimal
}
