package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmSaleCmd struct {
	id string
}

func (*rmSaleCmd) Name() string     { return "rm-sale" }
func (*rmSaleCmd) Synopsis() string { return "remove a sale from the history" }
func (*rmSaleCmd) Usage() string {
	return `kolo rm-sale -s <sale_id>

  Removes a sale from the history. The stock of the product is not
  restored.
`
}

func (c *rmSaleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "s", "", "Id of the sale to remove.")
}

func (c *rmSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -s is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}

	removed, err := ledger.DeleteSale(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error removing sale: %v\n", err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Printf("No sale %s, nothing to remove\n", c.id)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Removed sale %s\n", c.id)
	return subcommands.ExitSuccess
}
