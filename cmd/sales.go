package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kolocmil/store/renderer"
)

type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales history" }
func (*salesCmd) Usage() string {
	return `kolo sales

  Lists all recorded sales, oldest first.
`
}

func (*salesCmd) SetFlags(f *flag.FlagSet) {}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SalesMarkdown(ledger))
	return subcommands.ExitSuccess
}
