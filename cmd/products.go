package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kolocmil/store/renderer"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the products in the inventory" }
func (*productsCmd) Usage() string {
	return `kolo products

  Lists all products with price, stock and budget.
`
}

func (*productsCmd) SetFlags(f *flag.FlagSet) {}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProductsMarkdown(ledger))
	return subcommands.ExitSuccess
}
