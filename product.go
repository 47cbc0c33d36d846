package store

import "time"

// Product is one batch of identical merchandise purchased together and
// tracked as a single inventory line.
//
// Bulk properties (name, category, unit price, units, budget) never change
// after creation; only SoldUnits and TotalRevenue move, and only through
// [Ledger.RecordSale]. The JSON field names are the ones the legacy web app
// persisted.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	UnitPrice    Money     `json:"unitPrice"`
	TotalUnits   int       `json:"totalUnits"`
	TotalBudget  Money     `json:"totalBudget"`
	SoldUnits    int       `json:"soldUnits"`
	TotalRevenue Money     `json:"totalRevenue"`
	PurchaseDate time.Time `json:"purchaseDate"`
	IsActive     bool      `json:"isActive"` // reserved, persisted but unused by current logic
}

// AvailableUnits returns the units still in stock.
func (p Product) AvailableUnits() int { return p.TotalUnits - p.SoldUnits }

// SoldOut reports whether every purchased unit has been sold. The transition
// is one-directional: no operation decreases SoldUnits.
func (p Product) SoldOut() bool { return p.SoldUnits == p.TotalUnits }

// ProductSpec is the caller-supplied part of a new product. Numeric sanity
// (non-negative price, at least one unit) is the presentation layer's
// responsibility; the ledger only applies the budget defaulting rule.
type ProductSpec struct {
	Name        string
	Category    string
	UnitPrice   Money
	TotalUnits  int
	TotalBudget Money // defaults to UnitPrice x TotalUnits when zero or negative
}
