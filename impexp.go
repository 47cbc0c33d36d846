package store

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// localStorage keys used by the legacy web app.
const (
	legacyProductsKey = "koloCmilProducts"
	legacySalesKey    = "koloCmilSales"
)

// legacyID accepts the timestamp ids the web app generated (bare numbers)
// as well as the string ids this ledger writes.
type legacyID string

func (id *legacyID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = legacyID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither a string nor a number: %s", string(data))
	}
	*id = legacyID(n.String())
	return nil
}

// legacyProduct is a specialized struct for decoding the legacy layout.
type legacyProduct struct {
	ID           legacyID  `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	UnitPrice    float64   `json:"unitPrice"`
	TotalUnits   int       `json:"totalUnits"`
	TotalBudget  float64   `json:"totalBudget"`
	SoldUnits    int       `json:"soldUnits"`
	TotalRevenue float64   `json:"totalRevenue"`
	PurchaseDate time.Time `json:"purchaseDate"`
	IsActive     bool      `json:"isActive"`
}

// legacySale is a specialized struct for decoding the legacy layout.
type legacySale struct {
	ID            legacyID  `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	ProductID     legacyID  `json:"productId"`
	ProductName   string    `json:"productName"`
	Category      string    `json:"category"`
	CustomerName  string    `json:"customerName"`
	UnitPrice     float64   `json:"unitPrice"`
	Quantity      int       `json:"quantity"`
	TotalAmount   float64   `json:"totalAmount"`
	Date          time.Time `json:"date"`
	DateFormatted string    `json:"dateFormatted"`
	TimeFormatted string    `json:"timeFormatted"`
}

// ImportLocalStorage reads a JSON dump of the legacy web app's browser
// storage and returns both collections. The dump is an object holding the
// two localStorage keys; each value is either the raw string the browser
// stored, or an already parsed array. Unknown keys are ignored.
func ImportLocalStorage(r io.Reader) ([]Product, []Sale, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read dump: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, nil, fmt.Errorf("dump is not valid JSON: %w", err)
	}

	rawProducts, err := collectionBytes(jobj, legacyProductsKey)
	if err != nil {
		return nil, nil, err
	}
	rawSales, err := collectionBytes(jobj, legacySalesKey)
	if err != nil {
		return nil, nil, err
	}

	var lps []legacyProduct
	if len(rawProducts) > 0 {
		if err := json.Unmarshal(rawProducts, &lps); err != nil {
			return nil, nil, fmt.Errorf("could not decode %s: %w", legacyProductsKey, err)
		}
	}
	var lss []legacySale
	if len(rawSales) > 0 {
		if err := json.Unmarshal(rawSales, &lss); err != nil {
			return nil, nil, fmt.Errorf("could not decode %s: %w", legacySalesKey, err)
		}
	}

	products := make([]Product, 0, len(lps))
	for _, lp := range lps {
		products = append(products, Product{
			ID:           string(lp.ID),
			Name:         lp.Name,
			Category:     lp.Category,
			UnitPrice:    M(lp.UnitPrice),
			TotalUnits:   lp.TotalUnits,
			TotalBudget:  M(lp.TotalBudget),
			SoldUnits:    lp.SoldUnits,
			TotalRevenue: M(lp.TotalRevenue),
			PurchaseDate: lp.PurchaseDate,
			IsActive:     lp.IsActive,
		})
	}
	sales := make([]Sale, 0, len(lss))
	for _, ls := range lss {
		sales = append(sales, Sale{
			ID:            string(ls.ID),
			InvoiceNumber: ls.InvoiceNumber,
			ProductID:     string(ls.ProductID),
			ProductName:   ls.ProductName,
			Category:      ls.Category,
			CustomerName:  ls.CustomerName,
			UnitPrice:     M(ls.UnitPrice),
			Quantity:      ls.Quantity,
			TotalAmount:   M(ls.TotalAmount),
			Date:          ls.Date,
			DateFormatted: ls.DateFormatted,
			TimeFormatted: ls.TimeFormatted,
		})
	}
	return products, sales, nil
}

// collectionBytes extracts one localStorage value from the parsed dump and
// normalizes it to raw JSON array bytes. A missing key yields nil.
func collectionBytes(jobj any, key string) ([]byte, error) {
	jval, err := jsonpath.Get("$."+key, jobj)
	if err != nil {
		// jsonpath reports missing keys as errors; an absent collection is
		// simply empty.
		return nil, nil
	}
	switch v := jval.(type) {
	case nil:
		return nil, nil
	case string:
		// localStorage stores strings, the array is embedded JSON.
		return []byte(v), nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("could not normalize %s: %w", key, err)
		}
		return raw, nil
	}
}

// ExportLocalStorage writes the ledger in the dump layout ImportLocalStorage
// reads: one JSON object with both localStorage keys, each value the JSON
// array encoded as a string, the way the browser stored it.
func ExportLocalStorage(w io.Writer, l *Ledger) error {
	pbytes, err := json.Marshal(l.products)
	if err != nil {
		return fmt.Errorf("could not encode products: %w", err)
	}
	sbytes, err := json.Marshal(l.sales)
	if err != nil {
		return fmt.Errorf("could not encode sales: %w", err)
	}

	var obj jsonObjectWriter
	obj.Append(legacyProductsKey, string(pbytes))
	obj.Append(legacySalesKey, string(sbytes))
	data, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write dump: %w", err)
	}
	return nil
}
