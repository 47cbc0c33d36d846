package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/kolocmil/store"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	category string
	price    float64
	units    int
	budget   float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a product to the inventory" }
func (*addCmd) Usage() string {
	return `kolo add -n <name> -c <category> -p <unit_price> -u <units> [-b <budget>]

  Adds a product to the inventory. The budget defaults to unit price times
  units when not given.

Usage Examples:
$ kolo add -n "Coca Cola" -c Beverages -p 500 -u 100
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name.")
	f.StringVar(&c.category, "c", "", "Product category.")
	f.Float64Var(&c.price, "p", 0, "Unit sale price.")
	f.IntVar(&c.units, "u", 0, "Number of units purchased.")
	f.Float64Var(&c.budget, "b", 0, "Total purchase budget. Defaults to price*units.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if strings.TrimSpace(c.name) == "" || strings.TrimSpace(c.category) == "" {
		fmt.Fprintln(os.Stderr, "Error: -n and -c are required.")
		return subcommands.ExitUsageError
	}
	if c.price <= 0 || c.units <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -p and -u must be positive.")
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}

	p, err := ledger.AddProduct(store.ProductSpec{
		Name:        strings.TrimSpace(c.name),
		Category:    strings.TrimSpace(c.category),
		UnitPrice:   store.M(c.price),
		TotalUnits:  c.units,
		TotalBudget: store.M(c.budget),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding product: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added product %s: %s (%s), %d units at %s, budget %s\n",
		p.ID, p.Name, p.Category, p.TotalUnits, p.UnitPrice, p.TotalBudget)
	return subcommands.ExitSuccess
}
