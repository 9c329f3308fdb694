package cart

import "github.com/shopspring/decimal"

// BillLine is one consolidated entry on the final bill.
type BillLine struct {
	Name      string
	UnitPrice decimal.Decimal
	Qty       int
	LineTotal decimal.Decimal
}

// Bill is the read-only view materialized at pay time: cart entries
// consolidated by name with a computed grand total.
type Bill struct {
	Lines []BillLine
	Total decimal.Decimal
}

// Consolidate groups cart lines by name, summing quantities. The unit
// price comes from the first occurrence of each name (prices are
// name-keyed, so all occurrences share it). Line order follows first
// occurrence in the cart.
func (c *Cart) Consolidate() Bill {
	index := make(map[string]int)
	bill := Bill{Total: decimal.Zero}

	for _, item := range c.items {
		if i, seen := index[item.Name]; seen {
			bill.Lines[i].Qty += item.Qty
			continue
		}
		index[item.Name] = len(bill.Lines)
		bill.Lines = append(bill.Lines, BillLine{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Qty:       item.Qty,
		})
	}

	for i := range bill.Lines {
		bill.Lines[i].LineTotal = bill.Lines[i].UnitPrice.Mul(decimal.NewFromInt(int64(bill.Lines[i].Qty)))
		bill.Total = bill.Total.Add(bill.Lines[i].LineTotal)
	}

	return bill
}
