package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/kolocmil/store"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a legacy localStorage dump" }
func (*importCmd) Usage() string {
	return `kolo import [-f <file>]

  Imports products and sales from a localStorage JSON dump of the legacy
  web application and replaces the current store content with it. Reads
  stdin when no file is given.

Usage Examples:
$ kolo import -f dump.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Dump file to read. Defaults to stdin.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if c.file != "" {
		var err error
		in, err = os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening dump %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	products, sales, err := store.ImportLocalStorage(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading dump: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("importing %d products and %d sales", len(products), len(sales))

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Replace(products, sales); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d products and %d sales into %s\n", len(products), len(sales), *storePath)
	return subcommands.ExitSuccess
}
