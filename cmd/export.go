package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kolocmil/store"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the store as a legacy localStorage dump" }
func (*exportCmd) Usage() string {
	return `kolo export [-f <file>]

  Writes the store content in the localStorage dump shape understood by
  the legacy web application. Writes to stdout when no file is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File to write. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.file != "" {
		out, err = os.Create(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := store.ExportLocalStorage(out, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting store: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
