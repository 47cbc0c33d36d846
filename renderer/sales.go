package renderer

import (
	"fmt"
	"strings"

	"github.com/kolocmil/store"
)

// SalesMarkdown renders the sales history as a markdown table, in creation
// order.
func SalesMarkdown(l *store.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sales History\n\n")
	fmt.Fprintln(&b, "| Id | Invoice | Date | Time | Customer | Product | Qty | Total |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|:---|---:|---:|")

	count := 0
	for s := range l.Sales() {
		count++
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %d | %s |\n",
			s.ID,
			s.InvoiceNumber,
			s.DateFormatted,
			s.TimeFormatted,
			s.CustomerName,
			s.ProductName,
			s.Quantity,
			amount(s.TotalAmount),
		)
	}
	if count == 0 {
		return "# Sales History\n\nNo sales recorded yet\n"
	}
	return b.String()
}
