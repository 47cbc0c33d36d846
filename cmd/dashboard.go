package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/kolocmil/store/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the profitability analysis" }
func (*dashboardCmd) Usage() string {
	return `kolo dashboard

  Displays aggregate totals and a per-category profitability table.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(ledger, time.Now()))
	return subcommands.ExitSuccess
}
