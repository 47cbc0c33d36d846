package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the store files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `kolo fmt

  Reads all products and sales, validates them, and writes them back in a
  canonical JSONL format.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}

	products := slices.Collect(ledger.Products())
	sales := slices.Collect(ledger.Sales())
	if err := ledger.Replace(products, sales); err != nil {
		fmt.Fprintf(os.Stderr, "Error rewriting store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %d products and %d sales in %s\n", len(products), len(sales), *storePath)
	return subcommands.ExitSuccess
}
