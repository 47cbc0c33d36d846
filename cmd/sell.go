package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/kolocmil/store/invoice"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	product  string
	customer string
	quantity int
	out      string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of a product" }
func (*sellCmd) Usage() string {
	return `kolo sell -p <product_id> -c <customer> -q <quantity> [-o <dir>]

  Records a sale. The sale is rejected when the customer name is empty,
  the quantity is not positive, or it exceeds the available stock.
  With -o, the invoice PDF is written into the given directory.

Usage Examples:
$ kolo sell -p 42f1... -c Jean -q 3 -o invoices
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "Id of the product sold.")
	f.StringVar(&c.customer, "c", "", "Customer name.")
	f.IntVar(&c.quantity, "q", 0, "Number of units sold.")
	f.StringVar(&c.out, "o", "", "Directory to write the invoice PDF into. No invoice by default.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		fmt.Fprintln(os.Stderr, "Error: -p is required.")
		return subcommands.ExitUsageError
	}
	if strings.TrimSpace(c.customer) == "" {
		fmt.Fprintln(os.Stderr, "Error: -c is required.")
		return subcommands.ExitUsageError
	}
	if c.quantity <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -q must be positive.")
		return subcommands.ExitUsageError
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store %q: %v\n", *storePath, err)
		return subcommands.ExitFailure
	}

	sale, err := ledger.RecordSale(c.product, c.customer, c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording sale: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded sale %s: %d x %s to %s for %s\n",
		sale.InvoiceNumber, sale.Quantity, sale.ProductName, sale.CustomerName, sale.TotalAmount)

	if c.out != "" {
		path, err := invoice.Save(c.out, *sale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing invoice: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Invoice written to %s\n", path)
	}
	return subcommands.ExitSuccess
}
