package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names of the two independently keyed collections inside a store
// directory.
const (
	productsFile = "products.jsonl"
	salesFile    = "sales.jsonl"
)

// Store persists the two ledger collections as JSONL files in a directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily
// on the first write.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the store directory.
func (s *Store) Dir() string { return s.dir }

// Open loads the ledger persisted under dir and binds it to the store so
// that every subsequent mutation is written through. A missing directory or
// missing collection file yields an empty collection, not an error.
func Open(dir string) (*Ledger, error) {
	s := NewStore(dir)
	ledger, err := s.Load()
	if err != nil {
		return nil, err
	}
	ledger.store = s
	return ledger, nil
}

// Load reads both collections from the store directory into a fresh
// in-memory ledger, without binding it.
func (s *Store) Load() (*Ledger, error) {
	ledger := NewLedger()

	err := readFile(filepath.Join(s.dir, productsFile), func(f *os.File) error {
		products, err := DecodeProducts(f)
		if err != nil {
			return err
		}
		ledger.products = products
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not load products: %w", err)
	}

	err = readFile(filepath.Join(s.dir, salesFile), func(f *os.File) error {
		sales, err := DecodeSales(f)
		if err != nil {
			return err
		}
		ledger.sales = sales
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not load sales: %w", err)
	}

	return ledger, nil
}

// SaveProducts rewrites the whole product collection.
func (s *Store) SaveProducts(products []Product) error {
	return s.writeFile(productsFile, func(f *os.File) error {
		return EncodeProducts(f, products)
	})
}

// SaveSales rewrites the whole sale collection.
func (s *Store) SaveSales(sales []Sale) error {
	return s.writeFile(salesFile, func(f *os.File) error {
		return EncodeSales(f, sales)
	})
}

// readFile opens the file and hands it to read; a missing file is not an
// error, the reader is simply not called.
func readFile(path string, read func(*os.File) error) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

func (s *Store) writeFile(name string, write func(*os.File) error) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
