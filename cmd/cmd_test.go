package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"

	"github.com/kolocmil/store"
)

// withTempStore points the package store path at a fresh directory.
func withTempStore(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), ".kolo")
	old := *storePath
	*storePath = dir
	t.Cleanup(func() { *storePath = old })
	return dir
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %s flags: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddThenSell(t *testing.T) {
	dir := withTempStore(t)

	if got := run(t, &addCmd{}, "-n", "Coca Cola", "-c", "Beverages", "-p", "500", "-u", "100"); got != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want success", got)
	}

	ledger, err := store.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	var productID string
	for p := range ledger.Products() {
		productID = p.ID
		if !p.TotalBudget.Equal(store.M(50000)) {
			t.Errorf("TotalBudget = %s, want 50000", p.TotalBudget)
		}
	}
	if productID == "" {
		t.Fatal("add did not persist the product")
	}

	if got := run(t, &sellCmd{}, "-p", productID, "-c", "Jean", "-q", "3"); got != subcommands.ExitSuccess {
		t.Fatalf("sell = %v, want success", got)
	}

	ledger, err = store.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for s := range ledger.Sales() {
		count++
		if !s.TotalAmount.Equal(store.M(1500)) {
			t.Errorf("TotalAmount = %s, want 1500", s.TotalAmount)
		}
	}
	if count != 1 {
		t.Fatalf("sales = %d, want 1", count)
	}
}

func TestSell_Oversell(t *testing.T) {
	dir := withTempStore(t)

	if got := run(t, &addCmd{}, "-n", "Coca Cola", "-c", "Beverages", "-p", "500", "-u", "100"); got != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want success", got)
	}
	ledger, err := store.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	var productID string
	for p := range ledger.Products() {
		productID = p.ID
	}

	// 98 units after 3 sold must be rejected without mutating anything.
	if got := run(t, &sellCmd{}, "-p", productID, "-c", "Jean", "-q", "3"); got != subcommands.ExitSuccess {
		t.Fatalf("sell = %v, want success", got)
	}
	if got := run(t, &sellCmd{}, "-p", productID, "-c", "Paul", "-q", "98"); got != subcommands.ExitFailure {
		t.Fatalf("oversell = %v, want failure", got)
	}

	ledger, err = store.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	p := ledger.Product(productID)
	if p == nil || p.SoldUnits != 3 {
		t.Fatalf("SoldUnits after rejected sale = %+v, want 3", p)
	}
}

func TestUsageErrors(t *testing.T) {
	withTempStore(t)

	tests := []struct {
		name string
		cmd  subcommands.Command
		args []string
	}{
		{"add without name", &addCmd{}, []string{"-c", "Beverages", "-p", "500", "-u", "10"}},
		{"add non positive price", &addCmd{}, []string{"-n", "X", "-c", "Y", "-p", "0", "-u", "10"}},
		{"sell without product", &sellCmd{}, []string{"-c", "Jean", "-q", "1"}},
		{"sell blank customer", &sellCmd{}, []string{"-p", "id", "-c", "  ", "-q", "1"}},
		{"sell zero quantity", &sellCmd{}, []string{"-p", "id", "-c", "Jean", "-q", "0"}},
		{"rm without id", &rmCmd{}, nil},
		{"rm-sale without id", &rmSaleCmd{}, nil},
		{"invoice without sale", &invoiceCmd{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(t, tt.cmd, tt.args...); got != subcommands.ExitUsageError {
				t.Errorf("got %v, want usage error", got)
			}
		})
	}
}

func TestRm_MissingIsNoOp(t *testing.T) {
	withTempStore(t)
	if got := run(t, &rmCmd{}, "-p", "no-such-id"); got != subcommands.ExitSuccess {
		t.Errorf("rm missing product = %v, want success", got)
	}
	if got := run(t, &rmSaleCmd{}, "-s", "no-such-id"); got != subcommands.ExitSuccess {
		t.Errorf("rm-sale missing sale = %v, want success", got)
	}
}
