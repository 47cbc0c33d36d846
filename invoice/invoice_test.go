package invoice

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kolocmil/store"
)

func testSale() store.Sale {
	return store.Sale{
		ID:            "s1",
		InvoiceNumber: "INV-1709284600000",
		ProductID:     "p1",
		ProductName:   "Coca Cola",
		Category:      "Beverages",
		CustomerName:  "Jean Pierre",
		UnitPrice:     store.M(500),
		Quantity:      3,
		TotalAmount:   store.M(1500),
		Date:          time.Date(2024, time.March, 1, 9, 16, 40, 0, time.UTC),
		DateFormatted: "01/03/2024",
		TimeFormatted: "09:16:40",
	}
}

func TestFilename(t *testing.T) {
	testCases := []struct {
		name     string
		customer string
		want     string
	}{
		{name: "single name", customer: "Jean", want: "Invoice_INV-1709284600000_Jean.pdf"},
		{name: "spaces become underscores", customer: "Jean Pierre", want: "Invoice_INV-1709284600000_Jean_Pierre.pdf"},
		{name: "whitespace runs collapse", customer: "Jean  \t Pierre", want: "Invoice_INV-1709284600000_Jean_Pierre.pdf"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := testSale()
			s.CustomerName = tc.customer
			if got := Filename(s); got != tc.want {
				t.Errorf("Filename() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testSale()); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Errorf("output does not start with a PDF header: %.16q", buf.String())
	}
	if buf.Len() < 1000 {
		t.Errorf("rendered document is suspiciously small: %d bytes", buf.Len())
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, testSale())
	if err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if want := filepath.Join(dir, "Invoice_INV-1709284600000_Jean_Pierre.pdf"); path != want {
		t.Errorf("Save() path = %q, want %q", path, want)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("invoice file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("invoice file is empty")
	}
}
