package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeProducts reads a stream of JSONL data, one product per line, and
// returns the collection in file order. Empty lines are skipped.
func DecodeProducts(r io.Reader) ([]Product, error) {
	products := make([]Product, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var p Product
		if err := json.Unmarshal(lineBytes, &p); err != nil {
			return nil, fmt.Errorf("could not decode product line %q: %w", string(lineBytes), err)
		}
		products = append(products, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return products, nil
}

// EncodeProducts persists the whole collection to an io.Writer in JSONL
// format, one product per line, in collection order.
func EncodeProducts(w io.Writer, products []Product) error {
	for _, p := range products {
		if err := encodeLine(w, p); err != nil {
			return fmt.Errorf("failed to encode product %q: %w", p.ID, err)
		}
	}
	return nil
}

// DecodeSales reads a stream of JSONL data, one sale per line, and returns
// the collection in file order.
func DecodeSales(r io.Reader) ([]Sale, error) {
	sales := make([]Sale, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var s Sale
		if err := json.Unmarshal(lineBytes, &s); err != nil {
			return nil, fmt.Errorf("could not decode sale line %q: %w", string(lineBytes), err)
		}
		sales = append(sales, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return sales, nil
}

// EncodeSales persists the whole collection to an io.Writer in JSONL format,
// one sale per line, in collection order.
func EncodeSales(w io.Writer, sales []Sale) error {
	for _, s := range sales {
		if err := encodeLine(w, s); err != nil {
			return fmt.Errorf("failed to encode sale %q: %w", s.ID, err)
		}
	}
	return nil
}

// encodeLine marshals one record and writes it followed by a newline.
func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}
