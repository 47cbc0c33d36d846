package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kolocmil/store/invoice"
)

// invoiceCmd holds the flags for the 'invoice' subcommand.
type invoiceCmd struct {
	sale string
	out  string
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "generate the PDF invoice of a sale" }
func (*invoiceCmd) Usage() string {
	return `kolo invoice -s <sale_id> [-o <dir>]

  Renders the invoice of a recorded sale. With -o the PDF is written into
  the given directory, with '-o -' it is streamed to stdout so it can be
  piped to a spooler.

Usage Examples:
$ kolo invoice -s 42f1... -o invoices
$ kolo invoice -s 42f1... -o - | lp
`
}

func (c *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sale, "s", "", "Id of the sale to invoice.")
	f.StringVar(&c.out, "o", ".", "Directory to write the PDF into, or '-' for stdout.")
}

func (c *invoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.sale == "" {
		fmt.Fprintln(os.Stderr, "Error: -s is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}

	sale := ledger.Sale(c.sale)
	if sale == nil {
		fmt.Fprintf(os.Stderr, "Error: no sale %s\n", c.sale)
		return subcommands.ExitFailure
	}

	if c.out == "-" {
		if err := invoice.Render(os.Stdout, *sale); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering invoice: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	path, err := invoice.Save(c.out, *sale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing invoice: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Invoice written to %s\n", path)
	return subcommands.ExitSuccess
}
