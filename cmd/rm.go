package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a product from the inventory" }
func (*rmCmd) Usage() string {
	return `kolo rm -p <product_id>

  Removes a product. Its past sales stay in the history.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "p", "", "Id of the product to remove.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -p is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}

	removed, err := ledger.DeleteProduct(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error removing product: %v\n", err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Printf("No product %s, nothing to remove\n", c.id)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Removed product %s\n", c.id)
	return subcommands.ExitSuccess
}
