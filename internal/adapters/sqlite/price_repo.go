// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/example/freshpos/internal/ports/secondary"
)

// PriceRepository implements secondary.PriceRepository with SQLite.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new SQLite price repository.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// PriceOf returns the unit price for an item by exact, case-sensitive
// name. A missing item prices at zero; that is policy, not an error.
func (r *PriceRepository) PriceOf(ctx context.Context, name string) (decimal.Decimal, error) {
	var price float64
	err := r.db.QueryRowContext(ctx,
		"SELECT price FROM products WHERE item_name = ?",
		name,
	).Scan(&price)

	if err == sql.ErrNoRows {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to look up price: %w", err)
	}

	return decimal.NewFromFloat(price), nil
}

// Set upserts the price for an item.
func (r *PriceRepository) Set(ctx context.Context, name string, price decimal.Decimal) error {
	p, _ := price.Float64()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (item_name, price) VALUES (?, ?)
		 ON CONFLICT(item_name) DO UPDATE SET price = excluded.price, updated_at = CURRENT_TIMESTAMP`,
		name, p,
	)
	if err != nil {
		return fmt.Errorf("failed to set price: %w", err)
	}
	return nil
}

// Delete removes an item from the pricebook.
func (r *PriceRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM products WHERE item_name = ?",
		name,
	)
	if err != nil {
		return fmt.Errorf("failed to delete price: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("item '%s' not found", name)
	}
	return nil
}

// List returns all pricebook entries ordered by name.
func (r *PriceRepository) List(ctx context.Context) ([]*secondary.PriceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT item_name, price FROM products ORDER BY item_name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	defer rows.Close()

	var records []*secondary.PriceRecord
	for rows.Next() {
		var (
			name  string
			price float64
		)
		if err := rows.Scan(&name, &price); err != nil {
			return nil, fmt.Errorf("failed to scan price row: %w", err)
		}
		records = append(records, &secondary.PriceRecord{Name: name, Price: decimal.NewFromFloat(price)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read price rows: %w", err)
	}

	return records, nil
}
