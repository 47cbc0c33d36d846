package store

import (
	"fmt"
	"testing"
	"time"
)

// testClock is the fixed reference instant used by deterministic ledgers.
var testClock = time.Date(2025, time.March, 10, 14, 30, 5, 0, time.UTC)

// testLedger returns an in-memory ledger with a deterministic clock and id
// sequence, so tests can assert on generated fields.
func testLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	l.now = func() time.Time { return testClock }
	var n int
	l.newID = func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
	return l
}

// addTestProduct registers a product and fails the test on error.
func addTestProduct(t *testing.T, l *Ledger, spec ProductSpec) Product {
	t.Helper()
	p, err := l.AddProduct(spec)
	if err != nil {
		t.Fatalf("AddProduct(%q) returned error: %v", spec.Name, err)
	}
	return p
}

// equalProduct compares two products field by field, using Money.Equal for
// amounts and time.Time.Equal for instants, so representation differences
// after a JSON round trip do not matter.
func equalProduct(a, b Product) bool {
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Category == b.Category &&
		a.UnitPrice.Equal(b.UnitPrice) &&
		a.TotalUnits == b.TotalUnits &&
		a.TotalBudget.Equal(b.TotalBudget) &&
		a.SoldUnits == b.SoldUnits &&
		a.TotalRevenue.Equal(b.TotalRevenue) &&
		a.PurchaseDate.Equal(b.PurchaseDate) &&
		a.IsActive == b.IsActive
}

// equalSale is the Sale counterpart of equalProduct.
func equalSale(a, b Sale) bool {
	return a.ID == b.ID &&
		a.InvoiceNumber == b.InvoiceNumber &&
		a.ProductID == b.ProductID &&
		a.ProductName == b.ProductName &&
		a.Category == b.Category &&
		a.CustomerName == b.CustomerName &&
		a.UnitPrice.Equal(b.UnitPrice) &&
		a.Quantity == b.Quantity &&
		a.TotalAmount.Equal(b.TotalAmount) &&
		a.Date.Equal(b.Date) &&
		a.DateFormatted == b.DateFormatted &&
		a.TimeFormatted == b.TimeFormatted
}

// collectProducts and collectSales materialize the ledger iterators.
func collectProducts(l *Ledger) []Product {
	var out []Product
	for p := range l.Products() {
		out = append(out, p)
	}
	return out
}

func collectSales(l *Ledger) []Sale {
	var out []Sale
	for s := range l.Sales() {
		out = append(out, s)
	}
	return out
}
