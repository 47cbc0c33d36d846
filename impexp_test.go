package store

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// A dump as the browser produced it: both values are strings of embedded
// JSON, ids are the legacy millisecond timestamps.
const legacyDump = `{
  "koloCmilProducts": "[{\"id\":1709284522000,\"name\":\"Coca Cola\",\"category\":\"Beverages\",\"unitPrice\":500,\"totalUnits\":100,\"totalBudget\":50000,\"soldUnits\":3,\"totalRevenue\":1500,\"purchaseDate\":\"2024-03-01T09:15:22.000Z\",\"isActive\":true}]",
  "koloCmilSales": "[{\"id\":1709284600000,\"invoiceNumber\":\"INV-1709284600000\",\"productId\":1709284522000,\"productName\":\"Coca Cola\",\"category\":\"Beverages\",\"customerName\":\"Jean\",\"unitPrice\":500,\"quantity\":3,\"totalAmount\":1500,\"date\":\"2024-03-01T09:16:40.000Z\",\"dateFormatted\":\"01/03/2024\",\"timeFormatted\":\"09:16:40\"}]"
}`

func TestImportLocalStorage_LegacyDump(t *testing.T) {
	products, sales, err := ImportLocalStorage(strings.NewReader(legacyDump))
	if err != nil {
		t.Fatalf("ImportLocalStorage() returned error: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("imported %d products, want 1", len(products))
	}
	p := products[0]
	if p.ID != "1709284522000" {
		t.Errorf("product id = %q, want the numeric id as a string", p.ID)
	}
	if p.Name != "Coca Cola" || !p.UnitPrice.Equal(M(500)) || p.TotalUnits != 100 {
		t.Errorf("product fields damaged: %+v", p)
	}
	if p.SoldUnits != 3 || !p.TotalRevenue.Equal(M(1500)) {
		t.Errorf("stock fields damaged: %+v", p)
	}

	if len(sales) != 1 {
		t.Fatalf("imported %d sales, want 1", len(sales))
	}
	s := sales[0]
	if s.ID != "1709284600000" || s.ProductID != "1709284522000" {
		t.Errorf("sale ids = %q -> %q", s.ID, s.ProductID)
	}
	if s.InvoiceNumber != "INV-1709284600000" || s.CustomerName != "Jean" {
		t.Errorf("sale fields damaged: %+v", s)
	}
	if !s.TotalAmount.Equal(M(1500)) || s.Quantity != 3 {
		t.Errorf("sale amounts damaged: %+v", s)
	}
	if s.DateFormatted != "01/03/2024" || s.TimeFormatted != "09:16:40" {
		t.Errorf("formatted timestamps damaged: %+v", s)
	}
}

func TestImportLocalStorage_PlainArrays(t *testing.T) {
	// The same dump with values already parsed to arrays, as a hand-edited
	// export might hold.
	dump := `{
  "koloCmilProducts": [{"id":"p1","name":"Savon","category":"Hygiene","unitPrice":300,"totalUnits":50,"totalBudget":15000,"soldUnits":0,"totalRevenue":0,"purchaseDate":"2024-03-01T09:15:22Z","isActive":true}],
  "koloCmilSales": []
}`
	products, sales, err := ImportLocalStorage(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("ImportLocalStorage() returned error: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" || products[0].Name != "Savon" {
		t.Errorf("imported products = %+v", products)
	}
	if len(sales) != 0 {
		t.Errorf("imported %d sales, want 0", len(sales))
	}
}

func TestImportLocalStorage_MissingKeys(t *testing.T) {
	products, sales, err := ImportLocalStorage(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("ImportLocalStorage() returned error: %v", err)
	}
	if len(products) != 0 || len(sales) != 0 {
		t.Errorf("empty dump imported %d products, %d sales", len(products), len(sales))
	}
}

func TestImportLocalStorage_NotJSON(t *testing.T) {
	if _, _, err := ImportLocalStorage(strings.NewReader("nope")); err == nil {
		t.Error("ImportLocalStorage() on malformed input: error is nil, want error")
	}
}

func TestExportLocalStorage_RoundTrip(t *testing.T) {
	l := testLedger(t)
	p := addTestProduct(t, l, ProductSpec{Name: "Coca Cola", Category: "Beverages", UnitPrice: M(500), TotalUnits: 100})
	want, err := l.RecordSale(p.ID, "Jean", 3)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportLocalStorage(&buf, l); err != nil {
		t.Fatalf("ExportLocalStorage() returned error: %v", err)
	}

	products, sales, err := ImportLocalStorage(&buf)
	if err != nil {
		t.Fatalf("ImportLocalStorage() of our own export returned error: %v", err)
	}
	if len(products) != 1 || !equalProduct(products[0], *l.Product(p.ID)) {
		t.Errorf("round-tripped products = %+v", products)
	}
	if len(sales) != 1 || !equalSale(sales[0], *want) {
		t.Errorf("round-tripped sales = %+v", sales)
	}
}

func TestReplace(t *testing.T) {
	l := testLedger(t)
	addTestProduct(t, l, ProductSpec{Name: "Old", Category: "Misc", UnitPrice: M(100), TotalUnits: 1})

	products, sales, err := ImportLocalStorage(strings.NewReader(legacyDump))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Replace(products, sales); err != nil {
		t.Fatalf("Replace() returned error: %v", err)
	}
	if got := collectProducts(l); len(got) != 1 || got[0].Name != "Coca Cola" {
		t.Errorf("ledger products after replace = %+v", got)
	}
	// The imported stock keeps obeying the sale preconditions.
	if _, err := l.RecordSale("1709284522000", "Paul", 98); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("oversell after import: error = %v, want ErrInsufficientStock", err)
	}
}
