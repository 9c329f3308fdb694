package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/example/freshpos/internal/ports/primary"
	"github.com/example/freshpos/internal/ports/secondary"
)

// PricebookServiceImpl implements the PricebookService interface.
type PricebookServiceImpl struct {
	priceRepo secondary.PriceRepository
}

// NewPricebookService creates a new PricebookService with injected dependencies.
func NewPricebookService(priceRepo secondary.PriceRepository) *PricebookServiceImpl {
	return &PricebookServiceImpl{priceRepo: priceRepo}
}

// SetPrice upserts the price for an item.
func (s *PricebookServiceImpl) SetPrice(ctx context.Context, name string, price decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("item name is required")
	}
	if price.IsNegative() {
		return fmt.Errorf("price cannot be negative")
	}
	if err := s.priceRepo.Set(ctx, name, price); err != nil {
		return fmt.Errorf("failed to set price: %w", err)
	}
	return nil
}

// DeletePrice removes an item from the pricebook.
func (s *PricebookServiceImpl) DeletePrice(ctx context.Context, name string) error {
	if err := s.priceRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete price: %w", err)
	}
	return nil
}

// ListPrices returns all pricebook entries ordered by name.
func (s *PricebookServiceImpl) ListPrices(ctx context.Context) ([]*primary.PriceEntry, error) {
	records, err := s.priceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	entries := make([]*primary.PriceEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.PriceEntry{Name: r.Name, Price: r.Price}
	}
	return entries, nil
}

// Seed inserts the given prices for any item not yet in the pricebook.
func (s *PricebookServiceImpl) Seed(ctx context.Context, entries map[string]decimal.Decimal) (int, error) {
	existing, err := s.priceRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read pricebook: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, r := range existing {
		have[r.Name] = true
	}

	inserted := 0
	for name, price := range entries {
		if have[name] {
			continue
		}
		if err := s.priceRepo.Set(ctx, name, price); err != nil {
			return inserted, fmt.Errorf("failed to seed %s: %w", name, err)
		}
		inserted++
	}
	return inserted, nil
}
