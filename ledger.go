package store

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ledger is the sole authority over the product and sale collections.
//
// Every mutation is atomic: either the collections and the persistent store
// reflect the whole operation, or nothing changed at all. There is exactly
// one actor, so no locking is needed; operations run to completion before
// the next one starts.
type Ledger struct {
	products []Product
	sales    []Sale

	store *Store // nil for a purely in-memory ledger

	// hooks for deterministic tests
	now   func() time.Time
	newID func() string
}

// NewLedger creates an empty in-memory ledger, not bound to any store.
func NewLedger() *Ledger {
	return &Ledger{
		products: make([]Product, 0),
		sales:    make([]Sale, 0),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Products returns an iterator over the products in creation order.
func (l *Ledger) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range l.products {
			if !yield(p) {
				return
			}
		}
	}
}

// Sales returns an iterator over the sales in creation order.
func (l *Ledger) Sales() iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			if !yield(s) {
				return
			}
		}
	}
}

// Product returns a copy of the product with this id, or nil if unknown.
func (l *Ledger) Product(id string) *Product {
	if i := l.productIndex(id); i >= 0 {
		p := l.products[i]
		return &p
	}
	return nil
}

// Sale returns a copy of the sale with this id, or nil if unknown.
func (l *Ledger) Sale(id string) *Sale {
	for _, s := range l.sales {
		if s.ID == id {
			c := s
			return &c
		}
	}
	return nil
}

func (l *Ledger) productIndex(id string) int {
	for i, p := range l.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// AddProduct registers a batch of merchandise purchased in bulk.
//
// The ledger assigns the id and the purchase date, starts the sold counter
// and the revenue at zero, and defaults the budget to unit price times units
// when the spec leaves it unset or non-positive. The product collection is
// persisted before the call returns.
func (l *Ledger) AddProduct(spec ProductSpec) (Product, error) {
	budget := spec.TotalBudget
	if !budget.IsPositive() {
		budget = spec.UnitPrice.Mul(spec.TotalUnits)
	}
	p := Product{
		ID:           l.newID(),
		Name:         spec.Name,
		Category:     spec.Category,
		UnitPrice:    spec.UnitPrice,
		TotalUnits:   spec.TotalUnits,
		TotalBudget:  budget,
		SoldUnits:    0,
		TotalRevenue: M(0),
		PurchaseDate: l.now(),
		IsActive:     true,
	}
	l.products = append(l.products, p)
	if err := l.saveProducts(); err != nil {
		l.products = l.products[:len(l.products)-1]
		return Product{}, fmt.Errorf("add product %q: %w", spec.Name, err)
	}
	return p, nil
}

// RecordSale sells quantity units of a product to a customer.
//
// Preconditions: the product exists, the customer name is non-empty after
// trimming, the quantity is positive and does not exceed the available
// stock. On any precondition failure the ledger is left untouched and a nil
// sale is returned with a sentinel error naming the cause.
//
// On success the sale is appended with product fields snapshotted at this
// instant, the product's sold counter and revenue are updated, and both
// collections are persisted. The operation is all-or-nothing: a persistence
// failure rolls the in-memory mutation back.
func (l *Ledger) RecordSale(productID, customerName string, quantity int) (*Sale, error) {
	i := l.productIndex(productID)
	if i < 0 {
		return nil, fmt.Errorf("record sale: %w: %q", ErrProductNotFound, productID)
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, fmt.Errorf("record sale: %w", ErrEmptyCustomerName)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("record sale: %w, got %d", ErrInvalidQuantity, quantity)
	}
	before := l.products[i]
	if available := before.AvailableUnits(); quantity > available {
		return nil, fmt.Errorf("record sale: %w: %d requested, %d available", ErrInsufficientStock, quantity, available)
	}

	now := l.now()
	sale := Sale{
		ID:            l.newID(),
		InvoiceNumber: fmt.Sprintf("INV-%d", now.UnixMilli()),
		ProductID:     before.ID,
		ProductName:   before.Name,
		Category:      before.Category,
		CustomerName:  customerName,
		UnitPrice:     before.UnitPrice,
		Quantity:      quantity,
		TotalAmount:   before.UnitPrice.Mul(quantity),
		Date:          now,
		DateFormatted: now.Format(saleDateFormat),
		TimeFormatted: now.Format(saleTimeFormat),
	}

	after := before
	after.SoldUnits += quantity
	after.TotalRevenue = after.UnitPrice.Mul(after.SoldUnits)

	l.sales = append(l.sales, sale)
	l.products[i] = after
	if err := l.saveAll(); err != nil {
		l.sales = l.sales[:len(l.sales)-1]
		l.products[i] = before
		return nil, fmt.Errorf("record sale %s: %w", sale.InvoiceNumber, err)
	}
	return &sale, nil
}

// DeleteProduct removes the product unconditionally and reports whether it
// was present; deleting an unknown id is a no-op. Sales referencing the
// product are kept as they are: they snapshot the product fields and remain
// valid standalone records.
func (l *Ledger) DeleteProduct(id string) (bool, error) {
	i := l.productIndex(id)
	if i < 0 {
		return false, nil
	}
	removed := l.products[i]
	l.products = append(l.products[:i], l.products[i+1:]...)
	if err := l.saveProducts(); err != nil {
		l.products = append(l.products[:i], append([]Product{removed}, l.products[i:]...)...)
		return false, fmt.Errorf("delete product %q: %w", id, err)
	}
	return true, nil
}

// DeleteSale removes the sale unconditionally and reports whether it was
// present; deleting an unknown id is a no-op.
//
// The originating product keeps its sold counter and revenue: removing a
// sale does not restore stock.
func (l *Ledger) DeleteSale(id string) (bool, error) {
	for i, s := range l.sales {
		if s.ID == id {
			removed := s
			l.sales = append(l.sales[:i], l.sales[i+1:]...)
			if err := l.saveSales(); err != nil {
				l.sales = append(l.sales[:i], append([]Sale{removed}, l.sales[i:]...)...)
				return false, fmt.Errorf("delete sale %q: %w", id, err)
			}
			return true, nil
		}
	}
	return false, nil
}

// Replace swaps both collections at once, used by the legacy import. The
// new state is persisted before the call returns.
func (l *Ledger) Replace(products []Product, sales []Sale) error {
	oldProducts, oldSales := l.products, l.sales
	l.products, l.sales = products, sales
	if err := l.saveAll(); err != nil {
		l.products, l.sales = oldProducts, oldSales
		return fmt.Errorf("replace collections: %w", err)
	}
	return nil
}

func (l *Ledger) saveProducts() error {
	if l.store == nil {
		return nil
	}
	return l.store.SaveProducts(l.products)
}

func (l *Ledger) saveSales() error {
	if l.store == nil {
		return nil
	}
	return l.store.SaveSales(l.sales)
}

func (l *Ledger) saveAll() error {
	if err := l.saveProducts(); err != nil {
		return err
	}
	return l.saveSales()
}
