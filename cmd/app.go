// Package cmd implements the CLI application to manage the store.
package cmd

import (
	"flag"

	"github.com/google/subcommands"

	"github.com/kolocmil/store"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&sellCmd{},
	&rmCmd{},
	&rmSaleCmd{},
	&productsCmd{},
	&salesCmd{},
	&dashboardCmd{},
	&invoiceCmd{},
	&importCmd{},
	&exportCmd{},
	&fmtCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store-path", ".kolo", "Path to the store directory holding products and sales (JSONL format)")

// openLedger loads the ledger from the app store directory. A missing
// directory yields an empty ledger bound to it, so the first mutating
// command creates the files.
func openLedger() (*store.Ledger, error) {
	return store.Open(*storePath)
}
